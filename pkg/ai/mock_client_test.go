package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
)

func TestMockSuggestRulesDefault(t *testing.T) {
	rules, err := NewMock().SuggestRules(&entities.Plant{Species: "Ficus"}, nil, "")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, entities.CareWater, rules[0].Type)
	assert.Equal(t, 7, rules[0].IntervalDays)
}

func TestMockSuggestRulesReadsProblems(t *testing.T) {
	rules, err := NewMock().SuggestRules(&entities.Plant{}, []string{"leaves drooping", "soil bone dry"}, "")
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	assert.Equal(t, 4, rules[0].IntervalDays, "thirst symptoms shorten the interval")

	rules, err = NewMock().SuggestRules(&entities.Plant{}, []string{"yellow leaves, soggy soil"}, "")
	require.NoError(t, err)
	assert.Equal(t, 10, rules[0].IntervalDays, "overwatering symptoms stretch it")
}

func TestMockSuggestRulesAddsFertilizer(t *testing.T) {
	rules, err := NewMock().SuggestRules(&entities.Plant{}, []string{"pale leaves and slow growth"}, "")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, entities.CareFertilize, rules[1].Type)
	assert.Equal(t, 14, rules[1].IntervalDays)
}

func TestMockSummarizeCareMarksOffline(t *testing.T) {
	s := NewMock().SummarizeCare(&entities.Plant{Name: "Fred", Species: "Ficus"}, nil, "")
	assert.Contains(t, s, "offline")
}
