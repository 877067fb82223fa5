package llm

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"
)

const (
	// DefaultGeminiModel is used when the caller does not select a model.
	DefaultGeminiModel = "gemini-2.5-flash"
	// DefaultImageModel is the image-capable model for GenerateImage.
	DefaultImageModel = "gemini-3-pro-image-preview"
)

// News content trips the default safety filters, so all categories are
// disabled for summarization requests.
var safetyOff = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"headline":        {Type: genai.TypeString},
		"summary":         {Type: genai.TypeString},
		"imageSuggestion": {Type: genai.TypeString},
		"imageQueries": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
}

// GeminiClient implements Summarizer and ImageGenerator against the Gemini
// API.
type GeminiClient struct {
	client     *genai.Client
	model      string
	imageModel string
}

func NewGeminiClient(ctx context.Context, apiKey, model, imageModel string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	if model == "" {
		model = DefaultGeminiModel
	}
	if imageModel == "" {
		imageModel = DefaultImageModel
	}

	return &GeminiClient{
		client:     client,
		model:      model,
		imageModel: imageModel,
	}, nil
}

// Summarize issues a single non-streaming generation request with a JSON
// response schema. Unknown model names are passed through and surface as an
// API error.
func (c *GeminiClient) Summarize(ctx context.Context, text string, model string) (*Summary, error) {
	if model == "" {
		model = c.model
	}

	resp, err := c.client.Models.GenerateContent(ctx, model,
		genai.Text(buildPrompt(text, true)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   summarySchema,
			SafetySettings:   safetyOff,
		})
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	return parseSummary(resp.Text()), nil
}

// GenerateImage renders prompt into a data URI. The response parts are
// scanned for the first inline image blob; accompanying text parts are
// ignored.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: "16:9",
				// 2K keeps latency and quota reasonable.
				ImageSize: "2K",
			},
		})
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			payload := base64.StdEncoding.EncodeToString(part.InlineData.Data)
			return fmt.Sprintf("data:%s;base64,%s", mime, payload), nil
		}
	}

	return "", ErrNoImagePart
}
