package serviceImp

import (
	"fmt"
	"strings"

	"sprout/entities"
	"sprout/pkg/ai"
	planrepo "sprout/pkg/careplan/repository"
	"sprout/pkg/careplan/types"
	"sprout/pkg/presets"
	schedrepo "sprout/pkg/schedule/repository"
	schedsvc "sprout/pkg/schedule/service"
)

type guideSearcher interface {
	Search(query string, k int) ([]entities.GuideChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.GuideDoc, error)
}

type PlanSvc struct {
	rules   planrepo.CarePlanRepository
	tasks   schedrepo.TaskRepository
	engine  schedsvc.ScheduleService
	llm     ai.Client
	guides  guideSearcher
	presets presets.Engine
}

func NewCarePlanService(r planrepo.CarePlanRepository, t schedrepo.TaskRepository, eng schedsvc.ScheduleService, llm ai.Client, g guideSearcher, pr presets.Engine) *PlanSvc {
	return &PlanSvc{rules: r, tasks: t, engine: eng, llm: llm, guides: g, presets: pr}
}

func (s *PlanSvc) Get(plantID uint) ([]entities.CareRule, error) {
	return s.rules.ListByPlant(plantID)
}

func validType(t string) bool {
	return t == entities.CareWater || t == entities.CareFertilize || t == entities.CareRepot
}

func (s *PlanSvc) Replace(plantID uint, specs []types.RuleSpec) ([]entities.CareRule, []entities.CareTask, error) {
	seen := map[string]bool{}
	for _, sp := range specs {
		if !validType(sp.Type) {
			return nil, nil, fmt.Errorf("%w: unknown care type %q", schedsvc.ErrValidation, sp.Type)
		}
		if seen[sp.Type] {
			return nil, nil, fmt.Errorf("%w: duplicate care type %q", schedsvc.ErrValidation, sp.Type)
		}
		seen[sp.Type] = true
	}

	existing, err := s.rules.ListByPlant(plantID)
	if err != nil {
		return nil, nil, err
	}
	byType := map[string]entities.CareRule{}
	for _, r := range existing {
		byType[r.Type] = r
	}

	// removed types: drop the rule and its open task
	for _, r := range existing {
		if !seen[r.Type] {
			if err := s.rules.Delete(r.RuleID); err != nil {
				return nil, nil, err
			}
			if err := s.tasks.DeleteOpen(plantID, r.Type); err != nil {
				return nil, nil, err
			}
		}
	}

	var kept []entities.CareRule
	var added []entities.CareRule
	for _, sp := range specs {
		iv := sp.IntervalDays
		if iv <= 0 {
			iv = entities.DefaultIntervalDays
		}
		if old, ok := byType[sp.Type]; ok {
			// surviving type: update the rule in place, leave the open task
			// alone; the new interval applies from the next completion
			old.IntervalDays = iv
			old.AmountML = sp.AmountML
			old.Formula = sp.Formula
			if err := s.rules.Update(&old); err != nil {
				return nil, nil, err
			}
			kept = append(kept, old)
			continue
		}
		nr := entities.CareRule{PlantID: plantID, Type: sp.Type, IntervalDays: iv, AmountML: sp.AmountML, Formula: sp.Formula}
		if err := s.rules.Create(&nr); err != nil {
			return nil, nil, err
		}
		added = append(added, nr)
	}

	var tasks []entities.CareTask
	if len(added) > 0 {
		tasks, err = s.engine.ScheduleInitialTasks(plantID, added)
		if err != nil {
			return nil, nil, err
		}
	}

	return append(kept, added...), tasks, nil
}

func (s *PlanSvc) Suggest(plant *entities.Plant, problems []string) (*types.Suggestion, error) {
	var kbCtx string
	var refs []entities.ArticleRef

	if s.guides != nil {
		query := plant.Species + " " + plant.SoilType + " houseplant watering fertilizing " + strings.Join(problems, " ")
		snips, _ := s.guides.Search(query, 6) // ignore errors for robustness

		seen := map[uint]struct{}{}
		ids := make([]uint, 0, len(snips))
		for _, ch := range snips {
			if len(kbCtx) > 6000 {
				break
			}
			kbCtx += "\n---\n" + ch.Text
			if _, ok := seen[ch.DocID]; !ok {
				seen[ch.DocID] = struct{}{}
				ids = append(ids, ch.DocID)
			}
		}
		if len(ids) > 0 {
			if meta, err := s.guides.DocsMeta(ids); err == nil {
				for _, id := range ids {
					if d, ok := meta[id]; ok {
						refs = append(refs, entities.ArticleRef{Title: d.Title, URL: d.SourceURL})
					}
				}
			}
		}
	}

	var rules []types.RuleSpec
	if s.llm != nil {
		if proposed, err := s.llm.SuggestRules(plant, problems, kbCtx); err == nil && len(proposed) > 0 {
			rules = proposed
		}
	}
	if len(rules) == 0 && s.presets != nil {
		rules = s.presets.DefaultRules(plant)
	}
	if len(rules) == 0 {
		rules = []types.RuleSpec{{Type: entities.CareWater, IntervalDays: entities.DefaultIntervalDays}}
	}

	summary := ""
	if s.llm != nil {
		asRules := make([]entities.CareRule, 0, len(rules))
		for _, r := range rules {
			asRules = append(asRules, entities.CareRule{PlantID: plant.PlantID, Type: r.Type, IntervalDays: r.IntervalDays, AmountML: r.AmountML, Formula: r.Formula})
		}
		summary = s.llm.SummarizeCare(plant, asRules, kbCtx)
	}

	return &types.Suggestion{Rules: rules, SummaryMD: summary, Articles: refs}, nil
}
