package types

import "sprout/entities"

// RuleSpec is the wire form of one care-plan entry. The stored CareRule is
// derived from it on plan replacement.
type RuleSpec struct {
	Type         string   `json:"type"` // water|fertilize|repot
	IntervalDays int      `json:"interval_days"`
	AmountML     *float64 `json:"amount_ml,omitempty"`
	Formula      string   `json:"formula,omitempty"`
}

type Suggestion struct {
	Rules     []RuleSpec            `json:"rules"`
	SummaryMD string                `json:"summary_md"`
	Articles  []entities.ArticleRef `json:"articles,omitempty"`
}
