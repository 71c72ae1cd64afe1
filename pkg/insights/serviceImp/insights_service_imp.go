package serviceImp

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"sprout/entities"
	planrepo "sprout/pkg/careplan/repository"
	"sprout/pkg/insights/service"
	schedrepo "sprout/pkg/schedule/repository"
)

type InsightsSvc struct {
	events schedrepo.EventRepository
	tasks  schedrepo.TaskRepository
	rules  planrepo.CarePlanRepository
}

func New(events schedrepo.EventRepository, tasks schedrepo.TaskRepository, rules planrepo.CarePlanRepository) *InsightsSvc {
	return &InsightsSvc{events: events, tasks: tasks, rules: rules}
}

func (s *InsightsSvc) ForPlant(plantID uint) (*service.PlantInsights, error) {
	events, err := s.events.ListByPlant(plantID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	rules, err := s.rules.ListByPlant(plantID)
	if err != nil {
		return nil, err
	}

	out := &service.PlantInsights{PlantID: plantID}
	for _, careType := range typesOf(events, rules) {
		var interval int
		for _, r := range rules {
			if r.Type == careType {
				interval = r.IntervalDays
			}
		}
		st := computeTypeStats(careType, interval, filterByType(events, careType))
		if open, err := s.tasks.FindOpen(plantID, careType); err == nil && open != nil {
			due := open.DueAt
			st.NextDueAt = &due
		}
		out.Types = append(out.Types, st)
	}
	return out, nil
}

func typesOf(events []entities.CareEvent, rules []entities.CareRule) []string {
	seen := map[string]bool{}
	var order []string
	for _, r := range rules {
		if !seen[r.Type] {
			seen[r.Type] = true
			order = append(order, r.Type)
		}
	}
	for _, e := range events {
		if !seen[e.Type] {
			seen[e.Type] = true
			order = append(order, e.Type)
		}
	}
	sort.Strings(order)
	return order
}

func filterByType(events []entities.CareEvent, careType string) []entities.CareEvent {
	var out []entities.CareEvent
	for _, e := range events {
		if e.Type == careType {
			out = append(out, e)
		}
	}
	return out
}

// computeTypeStats works on events sorted by OccurredAt ascending. A gap is
// "on time" when it is at most one day over the configured interval; without
// a rule every gap counts as on time.
func computeTypeStats(careType string, intervalDays int, events []entities.CareEvent) service.TypeStats {
	st := service.TypeStats{Type: careType, Events: len(events)}
	if len(events) == 0 {
		return st
	}
	last := events[len(events)-1].OccurredAt
	st.LastEventAt = &last

	if len(events) < 2 {
		if intervalDays > 0 {
			st.OnTimeRate = 1
			st.Streak = 1
		}
		return st
	}

	var gapSum float64
	onTime := 0
	gaps := make([]float64, 0, len(events)-1)
	for i := 1; i < len(events); i++ {
		gap := events[i].OccurredAt.Sub(events[i-1].OccurredAt).Hours() / 24.0
		gaps = append(gaps, gap)
		gapSum += gap
		if intervalDays <= 0 || gap <= float64(intervalDays)+1 {
			onTime++
		}
	}
	st.AvgIntervalDays = gapSum / float64(len(gaps))
	st.OnTimeRate = float64(onTime) / float64(len(gaps))

	for i := len(gaps) - 1; i >= 0; i-- {
		if intervalDays > 0 && gaps[i] > float64(intervalDays)+1 {
			break
		}
		st.Streak++
	}
	return st
}

func (s *InsightsSvc) ExportXLSX(plantID uint) ([]byte, error) {
	events, err := s.events.ListByPlant(plantID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	ins, err := s.ForPlant(plantID)
	if err != nil {
		return nil, err
	}

	x := excelize.NewFile()
	defer x.Close()

	const histSheet = "History"
	x.SetSheetName("Sheet1", histSheet)
	headers := []string{"Date", "Type", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = x.SetCellValue(histSheet, cell, h)
	}
	for i, e := range events {
		_ = x.SetCellValue(histSheet, fmt.Sprintf("A%d", i+2), e.OccurredAt.Format("2006-01-02 15:04"))
		_ = x.SetCellValue(histSheet, fmt.Sprintf("B%d", i+2), e.Type)
		_ = x.SetCellValue(histSheet, fmt.Sprintf("C%d", i+2), e.Note)
	}

	const sumSheet = "Summary"
	if _, err := x.NewSheet(sumSheet); err != nil {
		return nil, err
	}
	sumHead := []string{"Type", "Events", "AvgIntervalDays", "OnTimeRate", "Streak"}
	for i, h := range sumHead {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = x.SetCellValue(sumSheet, cell, h)
	}
	for i, t := range ins.Types {
		row := i + 2
		_ = x.SetCellValue(sumSheet, fmt.Sprintf("A%d", row), t.Type)
		_ = x.SetCellValue(sumSheet, fmt.Sprintf("B%d", row), t.Events)
		_ = x.SetCellValue(sumSheet, fmt.Sprintf("C%d", row), t.AvgIntervalDays)
		_ = x.SetCellValue(sumSheet, fmt.Sprintf("D%d", row), t.OnTimeRate)
		_ = x.SetCellValue(sumSheet, fmt.Sprintf("E%d", row), t.Streak)
	}

	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
