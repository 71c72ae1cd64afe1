// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sprout/entities"
	"sprout/pkg/careplan/types"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) chat(system, user string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (c *openAI) SummarizeCare(p *entities.Plant, rules []entities.CareRule, kbCtx string) string {
	content, err := c.chat(
		"You are a houseplant-care coach who writes concise, actionable summaries in Markdown.",
		renderSummaryPrompt(p, rules, kbCtx),
	)
	if err != nil || content == "" {
		// fallback summary (no external call)
		return fallbackSummary(p, rules)
	}
	return content
}

func (c *openAI) SuggestRules(p *entities.Plant, problems []string, kbCtx string) ([]types.RuleSpec, error) {
	type llmRule struct {
		Type         string   `json:"type"` // water|fertilize|repot
		IntervalDays int      `json:"interval_days"`
		AmountML     *float64 `json:"amount_ml,omitempty"`
		Formula      string   `json:"formula,omitempty"`
	}

	content, err := c.chat(
		"You are a houseplant-care coach. Reply ONLY valid JSON.",
		renderSuggestPrompt(p, problems, kbCtx),
	)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Rules []llmRule `json:"rules"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		var arr []llmRule
		if err2 := json.Unmarshal([]byte(content), &arr); err2 != nil {
			return nil, fmt.Errorf("parse suggest_rules: %v / raw: %s", err, content)
		}
		payload.Rules = arr
	}

	res := make([]types.RuleSpec, 0, len(payload.Rules))
	seen := map[string]bool{}
	for _, r := range payload.Rules {
		tp := strings.ToLower(strings.TrimSpace(r.Type))
		if tp != entities.CareWater && tp != entities.CareFertilize && tp != entities.CareRepot {
			continue
		}
		if seen[tp] {
			continue
		}
		seen[tp] = true
		iv := r.IntervalDays
		if iv <= 0 {
			iv = entities.DefaultIntervalDays
		}
		res = append(res, types.RuleSpec{
			Type:         tp,
			IntervalDays: iv,
			AmountML:     r.AmountML,
			Formula:      strings.TrimSpace(r.Formula),
		})
	}
	// A plan without watering is never useful advice.
	if !seen[entities.CareWater] {
		res = append(res, types.RuleSpec{Type: entities.CareWater, IntervalDays: entities.DefaultIntervalDays})
	}
	return res, nil
}

func renderSuggestPrompt(p *entities.Plant, problems []string, kbCtx string) string {
	return fmt.Sprintf(`Propose a recurring care plan for the plant below. Use the GUIDE NOTES
where they apply and adjust for the reported PROBLEMS.
Constraints:
- at most one rule per type (water, fertilize, repot)
- intervals are whole days
- include amount_ml for water and a fertilizer formula when reasonable
- answer ONLY JSON: {"rules":[{"type":"water","interval_days":5,"amount_ml":250},{"type":"fertilize","interval_days":14,"formula":"..."}]}

PLANT: %+v

PROBLEMS: %v

GUIDE NOTES:
%s
`, p, problems, kbCtx)
}

func renderSummaryPrompt(p *entities.Plant, rules []entities.CareRule, kbCtx string) string {
	return fmt.Sprintf(`Summarize the care plan for this plant as short Markdown bullet points
(max 8 lines), practical and specific. Tie in the GUIDE NOTES where relevant
but never quote them at length. State amounts and intervals explicitly.

PLANT:
%+v

RULES:
%v

GUIDE NOTES:
%s
`, p, rules, kbCtx)
}

func fallbackSummary(p *entities.Plant, rules []entities.CareRule) string {
	lines := make([]string, 0, len(rules))
	for _, r := range rules {
		lines = append(lines, fmt.Sprintf("- %s every %d days", r.Type, r.IntervalDays))
	}
	if len(lines) == 0 {
		lines = append(lines, "- no care rules configured yet")
	}
	return fmt.Sprintf("**Care plan for %s**\n\n%s", p.Name, strings.Join(lines, "\n"))
}
