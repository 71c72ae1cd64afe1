// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"sprout/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Room{},
		&entities.Plant{},
		&entities.CareRule{},
		&entities.CareEvent{},
		&entities.CareTask{},
		&entities.Observation{},
		&entities.GuideDoc{},
		&entities.GuideChunk{},
		&entities.PushSubscription{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	// AutoMigrate does not add composite unique indexes on existing tables;
	// enforce the one-rule-per-(plant,type) invariant by hand.
	if err := migrateCareRuleUniqueness(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return db
}

// migrateCareRuleUniqueness dedupes care_rules (keeping the newest row per
// plant/type) and creates the unique index the engine relies on.
func migrateCareRuleUniqueness(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='care_rules'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	if err := db.Exec(`
DELETE FROM care_rules
WHERE rule_id NOT IN (
    SELECT MAX(rule_id) FROM care_rules GROUP BY plant_id, type
);
`).Error; err != nil {
		return fmt.Errorf("dedupe care_rules: %w", err)
	}

	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_care_rules_plant_type ON care_rules(plant_id, type)`).Error; err != nil {
		return fmt.Errorf("unique index care_rules: %w", err)
	}
	return nil
}
