// pkg/ai/client.go

package ai

import (
	"sprout/entities"
	"sprout/pkg/careplan/types"
)

type Client interface {
	SummarizeCare(p *entities.Plant, rules []entities.CareRule, kbCtx string) string

	// SuggestRules asks the model for a structured care plan proposal based on
	// the plant, reported problems and guide-library context.
	SuggestRules(p *entities.Plant, problems []string, kbCtx string) ([]types.RuleSpec, error)
}
