package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"headline":"test"}`,
			want:  `{"headline":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"headline\":\"test\"}\n```",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"headline\":\"test\"}\n```",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "slices JSON out of surrounding prose",
			input: "Sure, here is the JSON: {\"headline\":\"test\"} Hope that helps!",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"headline\":\"test\"}  ",
			want:  `{"headline":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSummaryFencedWithPreamble(t *testing.T) {
	raw := "Here you go:\n```json\n{\"headline\":\"H\",\"summary\":\"S\",\"imageSuggestion\":\"I\",\"imageQueries\":[\"a\",\"b\"]}\n```"

	got := parseSummary(raw)

	assert.Equal(t, "H", got.Headline)
	assert.Equal(t, "S", got.Summary)
	assert.Equal(t, "I", got.ImageSuggestion)
	assert.Equal(t, []string{"a", "b"}, got.ImageQueries)
}

func TestParseSummaryTruncatedJSONFallsBack(t *testing.T) {
	got := parseSummary(`{"headline":"H","summary":"S`)

	assert.Equal(t, FallbackSummary(), got)
}

func TestParseSummaryEmptyFallsBack(t *testing.T) {
	got := parseSummary("")

	assert.Equal(t, "Error generating headline", got.Headline)
	assert.Equal(t, "Error generating summary", got.Summary)
	assert.Equal(t, "Abstract news concept", got.ImageSuggestion)
	assert.Equal(t, []string{"News", "Technology"}, got.ImageQueries)
}

func TestParseSummaryMissingQueries(t *testing.T) {
	got := parseSummary(`{"headline":"H","summary":"S","imageSuggestion":"I"}`)

	assert.Equal(t, "H", got.Headline)
	assert.Equal(t, []string{}, got.ImageQueries)
}

func TestBuildPromptTruncates(t *testing.T) {
	text := strings.Repeat("x", maxArticleChars+500)

	prompt := buildPrompt(text, true)

	assert.Equal(t, false, strings.Contains(prompt, strings.Repeat("x", maxArticleChars+1)))
	assert.Equal(t, true, strings.Contains(prompt, strings.Repeat("x", maxArticleChars)))
	assert.Equal(t, true, strings.Contains(prompt, "<article>"))
}

func TestBuildPromptSchemaInstruction(t *testing.T) {
	withSchema := buildPrompt("body", true)
	withoutSchema := buildPrompt("body", false)

	assert.Equal(t, false, strings.Contains(withSchema, "Output as JSON only"))
	assert.Equal(t, true, strings.Contains(withoutSchema, "Output as JSON only"))
}
