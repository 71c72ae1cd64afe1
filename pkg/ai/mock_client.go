// pkg/ai/mock_client.go

package ai

import (
	"strings"

	"sprout/entities"
	"sprout/pkg/careplan/types"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) SummarizeCare(p *entities.Plant, rules []entities.CareRule, kbCtx string) string {
	return fallbackSummary(p, rules) + "\n\n_(offline suggestion)_"
}

func (m *mockClient) SuggestRules(p *entities.Plant, problems []string, kbCtx string) ([]types.RuleSpec, error) {
	joined := strings.ToLower(strings.Join(problems, " "))

	water := 7
	if strings.Contains(joined, "droop") || strings.Contains(joined, "dry") || strings.Contains(joined, "crisp") {
		water = 4
	}
	if strings.Contains(joined, "yellow") || strings.Contains(joined, "root rot") || strings.Contains(joined, "soggy") {
		water = 10
	}

	out := []types.RuleSpec{{Type: entities.CareWater, IntervalDays: water}}

	if strings.Contains(joined, "pale") || strings.Contains(joined, "slow growth") {
		out = append(out, types.RuleSpec{Type: entities.CareFertilize, IntervalDays: 14, Formula: "balanced 10-10-10, half strength"})
	}
	if strings.Contains(joined, "root") && strings.Contains(joined, "pot") {
		out = append(out, types.RuleSpec{Type: entities.CareRepot, IntervalDays: 365})
	}
	return out, nil
}
