package genai

import (
	"context"

	"abled.ai/abled-api-gateway/app/utils/httpclients/gemini"
)

// NativeProvider drives Gemini through the generateContent REST API via
// the shared resty client.
type NativeProvider struct {
	client      *gemini.Client
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
}

func NewNativeProvider(client *gemini.Client, apiKey, model string, temperature float32, maxTokens int) *NativeProvider {
	return &NativeProvider{
		client:      client,
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *NativeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.client.GenerateContent(ctx, p.apiKey, p.model, prompt, &gemini.GenerationConfig{
		Temperature:     p.temperature,
		MaxOutputTokens: p.maxTokens,
	})
}
