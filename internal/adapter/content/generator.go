package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

const maxResponseBytes = 1 << 20

const promptTemplate = `
You are an expert social media content planner. Produce ONLY valid JSON inside the markers below.
Do NOT repeat the prompt, do NOT add any explanation or commentary, output EXACTLY one JSON object.

###JSON_START###
{
  "ideas": ["idea1", "idea2", "..."],
  "captions": ["caption1", "caption2", "..."],
  "hashtags": ["#tag1", "#tag2", "..."],
  "outline": "A single string containing the blog outline with sections (use \\n for new lines)"
}
###JSON_END###

Now create the content plan for the topic: %q
`

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	DoSample     bool    `json:"do_sample"`
}

// InferenceGenerator calls a hosted text-generation endpoint through a
// circuit breaker.
type InferenceGenerator struct {
	endpoint string
	apiKey   string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
}

var _ ports.ContentGenerator = (*InferenceGenerator)(nil)

func NewInferenceGenerator(endpoint, apiKey string, timeout time.Duration) *InferenceGenerator {
	return &InferenceGenerator{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "content-inference-cb",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				zap.L().Info("circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
	}
}

// Generate returns a structured plan when the answer contains a JSON object
// and the raw generated text otherwise.
func (g *InferenceGenerator) Generate(ctx context.Context, topic string) (domain.ContentPlan, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.call(ctx, topic)
	})
	if err != nil {
		return domain.ContentPlan{}, err
	}

	text := candidateText(result.([]byte))
	if plan, ok := extractPlan(text); ok && plan.Structured() {
		return plan, nil
	}
	return domain.ContentPlan{Raw: text}, nil
}

func (g *InferenceGenerator) call(ctx context.Context, topic string) ([]byte, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs:     fmt.Sprintf(promptTemplate, topic),
		Parameters: inferenceParameters{MaxNewTokens: 500, Temperature: 0.2},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("inference endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}
