package domain

import (
	"fmt"
	"strings"
)

// MinRawContentLength is the shortest unparsed upstream answer worth returning.
const MinRawContentLength = 20

// ContentPlan is a generated social-media content plan. Raw is set instead of
// the structured fields when the upstream answer could not be parsed; Mock is
// set when the plan was produced locally.
type ContentPlan struct {
	Ideas    []string
	Captions []string
	Hashtags []string
	Outline  string
	Raw      string
	Mock     bool
}

// Structured reports whether the plan carries parsed fields.
func (p ContentPlan) Structured() bool {
	return len(p.Ideas) > 0 || len(p.Captions) > 0 || len(p.Hashtags) > 0 || p.Outline != ""
}

func NormalizeTopic(topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", invalid("topic", "required")
	}
	if len(topic) > 200 {
		return "", invalid("topic", "longer than 200 characters")
	}
	return topic, nil
}

// MockContentPlan builds a placeholder plan used when generation is unavailable.
func MockContentPlan(topic string) ContentPlan {
	return ContentPlan{
		Ideas: []string{
			fmt.Sprintf("%s: Quick Tip #1", topic),
			fmt.Sprintf("%s: Did you know?", topic),
			fmt.Sprintf("%s: How-to Short", topic),
			fmt.Sprintf("%s: Behind the Scenes", topic),
			fmt.Sprintf("%s: Challenge Post", topic),
		},
		Captions: []string{
			fmt.Sprintf("Start with this: %s, make it a habit.", topic),
			fmt.Sprintf("Level up your %s in 3 steps.", topic),
			fmt.Sprintf("Small actions > Big results. %s tips.", topic),
			fmt.Sprintf("Why %s matters: short guide.", topic),
			fmt.Sprintf("Join the %s challenge today.", topic),
		},
		Hashtags: []string{"#trending", "#protips", "#daily", "#learn", "#growth", "#howto", "#guide", "#motivation", "#tips", "#now"},
		Outline:  fmt.Sprintf("1. Intro to %s\n2. Why it matters\n3. 5 practical steps\n4. Examples\n5. Conclusion & CTA", topic),
		Mock:     true,
	}
}
