package presets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sprout/entities"
	"sprout/pkg/careplan/types"
)

// Engine answers "what does this species usually need" from the bundled
// species table. It backs plan suggestions when no LLM is configured.
type Engine interface {
	DefaultRules(p *entities.Plant) []types.RuleSpec
	Known(species string) bool
}

type speciesRow struct {
	Species       string
	WaterDays     int
	FertilizeDays int
	RepotDays     int
	WaterML       float64
	Notes         string
}

type presets struct {
	rows    map[string]speciesRow
	soilAdj map[string]float64 // soil type -> watering interval factor
}

func LoadFromFiles(speciesCSV string) (Engine, error) {
	p := &presets{
		rows: map[string]speciesRow{},
		// cactus mixes dry out slower than they need water; hydro barely ever
		soilAdj: map[string]float64{"universal": 1.0, "cactus": 1.5, "orchid": 1.2, "hydro": 2.0},
	}
	if speciesCSV != "" {
		if err := p.loadSpeciesCSV(speciesCSV); err != nil {
			return nil, err
		}
	}
	if len(p.rows) == 0 {
		return nil, errors.New("no species presets loaded")
	}
	return p, nil
}

func (p *presets) loadSpeciesCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cSpecies := findAny("Species", "name", "plant")
	cWater := findAny("WaterIntervalDays", "water_days", "watering", "waterinterval")
	cFert := findAny("FertilizeIntervalDays", "fertilize_days", "feeding", "fertinterval")
	cRepot := findAny("RepotIntervalDays", "repot_days", "repotting")
	cML := findAny("WaterAmountML", "amount_ml", "waterml")
	cNote := findAny("Notes", "note", "tips")

	if cSpecies == -1 || cWater == -1 {
		return fmt.Errorf("species presets missing required columns. Found headers: %v\nNeed at least: Species, WaterIntervalDays", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}

		water, _ := strconv.Atoi(strings.TrimSpace(get(cWater)))
		if water <= 0 {
			continue // skip invalid rows
		}
		fert, _ := strconv.Atoi(strings.TrimSpace(get(cFert)))
		repot, _ := strconv.Atoi(strings.TrimSpace(get(cRepot)))
		ml, _ := strconv.ParseFloat(strings.TrimSpace(get(cML)), 64)

		key := strings.ToLower(strings.TrimSpace(get(cSpecies)))
		p.rows[key] = speciesRow{
			Species:       strings.TrimSpace(get(cSpecies)),
			WaterDays:     water,
			FertilizeDays: fert,
			RepotDays:     repot,
			WaterML:       ml,
			Notes:         strings.TrimSpace(get(cNote)),
		}
	}
	return nil
}

func (p *presets) Known(species string) bool {
	_, ok := p.rows[strings.ToLower(strings.TrimSpace(species))]
	return ok
}

func (p *presets) DefaultRules(plant *entities.Plant) []types.RuleSpec {
	row, ok := p.rows[strings.ToLower(strings.TrimSpace(plant.Species))]
	if !ok {
		return []types.RuleSpec{{Type: entities.CareWater, IntervalDays: entities.DefaultIntervalDays}}
	}

	adj := p.soilAdj[plant.SoilType]
	if adj == 0 {
		adj = 1.0
	}
	water := int(float64(row.WaterDays) * adj)
	if water < 1 {
		water = 1
	}

	out := []types.RuleSpec{}
	spec := types.RuleSpec{Type: entities.CareWater, IntervalDays: water}
	if row.WaterML > 0 {
		ml := row.WaterML
		if plant.PotSizeCM != nil && *plant.PotSizeCM > 0 {
			// pot volume scales roughly with diameter; the table assumes 12 cm
			ml = row.WaterML * (*plant.PotSizeCM / 12.0)
		}
		spec.AmountML = &ml
	}
	out = append(out, spec)

	if row.FertilizeDays > 0 {
		out = append(out, types.RuleSpec{Type: entities.CareFertilize, IntervalDays: row.FertilizeDays, Formula: "balanced 10-10-10"})
	}
	if row.RepotDays > 0 {
		out = append(out, types.RuleSpec{Type: entities.CareRepot, IntervalDays: row.RepotDays})
	}
	return out
}
