package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"outputs wrapper", `{"outputs":[{"generated_text":"hello"}]}`, "hello"},
		{"generation list", `[{"generated_text":"hi there"}]`, "hi there"},
		{"summarization list", `[{"summary_text":"short summary"}]`, "short summary"},
		{"json string", `"plain"`, "plain"},
		{"unknown object", `{"error":"loading"}`, `{"error":"loading"}`},
		{"not json", `free text`, "free text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidateText([]byte(tt.body)))
		})
	}
}

func TestExtractPlan_BetweenMarkers(t *testing.T) {
	text := `prompt echo {"ideas":["ignored"]}
###JSON_START###
{"ideas":["a","b"],"captions":["c"],"hashtags":["#go"],"outline":"1. intro"}
###JSON_END###`

	plan, ok := extractPlan(text)

	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, plan.Ideas)
	assert.Equal(t, []string{"c"}, plan.Captions)
	assert.Equal(t, []string{"#go"}, plan.Hashtags)
	assert.Equal(t, "1. intro", plan.Outline)
}

func TestExtractPlan_FallsBackToFirstObject(t *testing.T) {
	plan, ok := extractPlan(`Sure! {"ideas":["x"],"outline":42} hope that helps`)

	require.True(t, ok)
	assert.Equal(t, []string{"x"}, plan.Ideas)
	assert.Equal(t, []string{}, plan.Captions)
	assert.Equal(t, "42", plan.Outline)
}

func TestExtractPlan_InvalidJSON(t *testing.T) {
	_, ok := extractPlan("###JSON_START### {not json} ###JSON_END###")
	assert.False(t, ok)

	_, ok = extractPlan("no braces at all")
	assert.False(t, ok)
}

func TestCacheKey_NormalizesTopic(t *testing.T) {
	assert.Equal(t, cacheKey("Go   Tips"), cacheKey(" go tips "))
}
