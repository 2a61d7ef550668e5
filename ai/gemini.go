package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Describer produces a natural-language description of an image.
type Describer interface {
	Describe(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
}

const (
	modelName   = "gemini-2.0-flash"
	callTimeout = 120 * time.Second
)

// Gemini is the Describer backed by the Gemini API. Every call is a
// stateless single-turn request; no conversation history is kept.
type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Describe(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(imageData, mimeType),
		}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, modelName, contents, generationConfig())
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.8),
		TopP:            genai.Ptr[float32](0.95),
		TopK:            genai.Ptr[float32](64),
		MaxOutputTokens: 8192,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}
}

// IsQuotaErr reports whether the upstream failure is a rate-limit / quota
// error, which callers surface as retryable.
func IsQuotaErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "quota")
}
