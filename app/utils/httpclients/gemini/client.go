package gemini

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"abled.ai/abled-api-gateway/app/utils/httpclients"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("GeminiClient")
}

// Client talks to the native Generative Language REST API. The
// OpenAI-compatible endpoint is handled separately through the openai SDK.
type Client struct {
	baseURL string
}

func NewClient() *Client {
	base := environment_variables.EnvironmentVariables.GEMINI_NATIVE_BASE_URL
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &Client{baseURL: base}
}

type GenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent runs a single-turn generation and concatenates all text
// parts of the first candidate.
func (c *Client) GenerateContent(ctx context.Context, apiKey, model, prompt string, cfg *GenerationConfig) (string, error) {
	var resp generateContentResponse
	res, err := RestyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey).
		SetBody(generateContentRequest{
			Contents:         []content{{Parts: []contentPart{{Text: prompt}}}},
			GenerationConfig: cfg,
		}).
		SetResult(&resp).
		SetError(&resp).
		Post(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model))
	if err != nil {
		return "", err
	}
	if res.IsError() {
		if resp.Error != nil {
			return "", fmt.Errorf("gemini: %s (%d)", resp.Error.Message, resp.Error.Code)
		}
		return "", fmt.Errorf("gemini: HTTP %d", res.StatusCode())
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	parts := make([]string, 0, len(resp.Candidates[0].Content.Parts))
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			parts = append(parts, part.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini: candidate carried no text parts")
	}
	return strings.Join(parts, "\n"), nil
}

type modelsAPIResponse struct {
	Models []struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	} `json:"models"`
}

type Model struct {
	Name        string
	DisplayName string
}

// ListModels is used by the healthcheck cron to probe the upstream.
func (c *Client) ListModels(ctx context.Context, apiKey string) ([]Model, error) {
	var resp modelsAPIResponse
	res, err := RestyClient.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", apiKey).
		SetResult(&resp).
		Get(c.baseURL + "/models")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("gemini: HTTP %d listing models", res.StatusCode())
	}

	models := make([]Model, 0, len(resp.Models))
	for _, model := range resp.Models {
		models = append(models, Model{Name: model.Name, DisplayName: model.DisplayName})
	}
	return models, nil
}
