package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Summary is the normalized result of summarizing one article.
type Summary struct {
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	ImageSuggestion string   `json:"imageSuggestion"`
	ImageQueries    []string `json:"imageQueries"`
}

// Summarizer turns raw article text into a Summary. Implementations must
// recover from malformed model output by returning FallbackSummary rather
// than an error; only request failures propagate.
type Summarizer interface {
	Summarize(ctx context.Context, text string, model string) (*Summary, error)
}

// ImageGenerator renders a short prompt into a displayable data URI.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// ErrNoImagePart means the image model answered but no response part
// carried inline image data.
var ErrNoImagePart = errors.New("no inline image data in model response")

// FallbackSummary is the fixed payload substituted when the model's output
// cannot be parsed. The pipeline always yields a renderable result.
func FallbackSummary() *Summary {
	return &Summary{
		Headline:        "Error generating headline",
		Summary:         "Error generating summary",
		ImageSuggestion: "Abstract news concept",
		ImageQueries:    []string{"News", "Technology"},
	}
}

// parseSummary applies the defensive parse to raw model output: strip any
// code-fence wrapping, slice out the outermost {...} span, then unmarshal.
// A parse failure yields the fallback, never an error.
func parseSummary(raw string) *Summary {
	content := cleanJSONResponse(raw)

	var parsed Summary
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return FallbackSummary()
	}
	if parsed.ImageQueries == nil {
		parsed.ImageQueries = []string{}
	}
	return &parsed
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
