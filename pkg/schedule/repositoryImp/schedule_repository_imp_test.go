package repositoryImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sprout/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.CareTask{}, &entities.CareEvent{}, &entities.CareRule{}))
	return db
}

func TestTaskRepoOpenLookupAndDueWindow(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepo(db)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(&entities.CareTask{PlantID: 1, Type: entities.CareWater, DueAt: now}))
	require.NoError(t, repo.Insert(&entities.CareTask{PlantID: 1, Type: entities.CareFertilize, DueAt: now.AddDate(0, 0, 20)}))

	open, err := repo.FindOpen(1, entities.CareWater)
	require.NoError(t, err)
	require.NotNil(t, open)
	require.Equal(t, entities.CareWater, open.Type)

	missing, err := repo.FindOpen(2, entities.CareWater)
	require.NoError(t, err)
	require.Nil(t, missing, "absent row is (nil, nil), not an error")

	due, err := repo.DueBy(now.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, open.TaskID, due[0].TaskID)
}

func TestTaskRepoUpdateDueAtReportsMissingRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepo(db)

	now := time.Now().UTC().Truncate(time.Second)
	tk := entities.CareTask{PlantID: 3, Type: entities.CareWater, DueAt: now}
	require.NoError(t, repo.Insert(&tk))

	n, err := repo.UpdateDueAt(tk.TaskID, now.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = repo.UpdateDueAt(999, now)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestDeleteByOriginAndCompletionID(t *testing.T) {
	db := openTestDB(t)
	tasks := NewTaskRepo(db)
	events := NewEventRepo(db)

	now := time.Now().UTC()
	require.NoError(t, events.Insert(&entities.CareEvent{PlantID: 1, Type: entities.CareWater, OccurredAt: now, CompletionID: "tok-1"}))
	require.NoError(t, tasks.Insert(&entities.CareTask{PlantID: 1, Type: entities.CareWater, DueAt: now, OriginEventID: "tok-1"}))
	require.NoError(t, tasks.Insert(&entities.CareTask{PlantID: 1, Type: entities.CareFertilize, DueAt: now}))

	require.NoError(t, events.DeleteByCompletionID("tok-1"))
	require.NoError(t, tasks.DeleteByOrigin("tok-1"))

	left, err := events.ListByPlant(1, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Empty(t, left)

	open, err := tasks.FindOpen(1, entities.CareWater)
	require.NoError(t, err)
	require.Nil(t, open)

	other, err := tasks.FindOpen(1, entities.CareFertilize)
	require.NoError(t, err)
	require.NotNil(t, other, "unrelated task untouched")
}

func TestDeleteByPlantCascade(t *testing.T) {
	db := openTestDB(t)
	tasks := NewTaskRepo(db)
	events := NewEventRepo(db)

	now := time.Now().UTC()
	require.NoError(t, tasks.Insert(&entities.CareTask{PlantID: 7, Type: entities.CareWater, DueAt: now}))
	require.NoError(t, events.Insert(&entities.CareEvent{PlantID: 7, Type: entities.CareWater, OccurredAt: now, CompletionID: "x"}))

	require.NoError(t, tasks.DeleteByPlant(7))
	require.NoError(t, events.DeleteByPlant(7))

	open, err := tasks.FindOpen(7, entities.CareWater)
	require.NoError(t, err)
	require.Nil(t, open)

	evs, err := events.ListByPlant(7, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Empty(t, evs, "no orphans after plant delete")
}
