package service

import (
	"sprout/entities"
	"sprout/pkg/careplan/types"
)

type CarePlanService interface {
	Get(plantID uint) ([]entities.CareRule, error)

	// Replace swaps the plant's rule set wholesale. New types get an initial
	// task, removed types lose their open task, surviving types keep their
	// open task untouched (interval edits apply from the next completion).
	Replace(plantID uint, specs []types.RuleSpec) ([]entities.CareRule, []entities.CareTask, error)

	// Suggest proposes a care plan for the plant from species presets, the
	// guide library and (when configured) the LLM.
	Suggest(plant *entities.Plant, problems []string) (*types.Suggestion, error)
}
