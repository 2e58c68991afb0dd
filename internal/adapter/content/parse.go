package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

const (
	jsonStartMarker = "###JSON_START###"
	jsonEndMarker   = "###JSON_END###"
)

var firstJSONObject = regexp.MustCompile(`(?s)\{.*\}`)

// candidateText pulls the generated text out of the shapes inference
// endpoints answer with. Unknown shapes are returned verbatim.
func candidateText(body []byte) string {
	var wrapped struct {
		Outputs []generated `json:"outputs"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Outputs) > 0 && wrapped.Outputs[0].text() != "" {
		return wrapped.Outputs[0].text()
	}

	var list []generated
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].text() != "" {
		return list[0].text()
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}

	return string(body)
}

type generated struct {
	GeneratedText string `json:"generated_text"`
	SummaryText   string `json:"summary_text"`
}

func (g generated) text() string {
	if g.GeneratedText != "" {
		return g.GeneratedText
	}
	return g.SummaryText
}

// extractPlan looks for a JSON object between the markers first and falls
// back to the first object found anywhere in text.
func extractPlan(text string) (domain.ContentPlan, bool) {
	if start := strings.Index(text, jsonStartMarker); start != -1 {
		if end := strings.Index(text, jsonEndMarker); end > start {
			return decodePlan(strings.TrimSpace(text[start+len(jsonStartMarker) : end]))
		}
	}

	if match := firstJSONObject.FindString(text); match != "" {
		return decodePlan(match)
	}
	return domain.ContentPlan{}, false
}

func decodePlan(raw string) (domain.ContentPlan, bool) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return domain.ContentPlan{}, false
	}

	plan := domain.ContentPlan{
		Ideas:    stringList(fields["ideas"]),
		Captions: stringList(fields["captions"]),
		Hashtags: stringList(fields["hashtags"]),
	}
	if outline, ok := fields["outline"]; ok && outline != nil {
		plan.Outline = fmt.Sprint(outline)
	}
	return plan, true
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
