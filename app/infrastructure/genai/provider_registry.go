package genai

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"abled.ai/abled-api-gateway/app/domain/generation"
	"abled.ai/abled-api-gateway/app/utils/httpclients/gemini"
	"abled.ai/abled-api-gateway/app/utils/logger"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

const (
	TransportOpenAI = "openai"
	TransportNative = "native"

	defaultOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
)

// ProviderRegistry selects the concrete transport once at startup and
// builds one ProviderClient per credential on demand. The dispatcher only
// depends on the generation interfaces.
type ProviderRegistry struct {
	transport     string
	openAIBaseURL string
	model         string
	temperature   float32
	maxTokens     int
	geminiClient  *gemini.Client
}

func NewProviderRegistry(geminiClient *gemini.Client) *ProviderRegistry {
	env := &environment_variables.EnvironmentVariables

	transport := strings.ToLower(strings.TrimSpace(env.GEMINI_TRANSPORT))
	switch transport {
	case TransportOpenAI, TransportNative:
	case "":
		transport = TransportOpenAI
	default:
		logger.GetLogger().WithFields(logrus.Fields{"transport": transport}).
			Warn("unknown GEMINI_TRANSPORT, falling back to openai")
		transport = TransportOpenAI
	}

	openAIBaseURL := env.GEMINI_OPENAI_BASE_URL
	if openAIBaseURL == "" {
		openAIBaseURL = defaultOpenAIBaseURL
	}

	return &ProviderRegistry{
		transport:     transport,
		openAIBaseURL: openAIBaseURL,
		model:         env.GEMINI_MODEL,
		temperature:   env.GeminiTemperature(),
		maxTokens:     env.GEMINI_MAX_TOKENS,
		geminiClient:  geminiClient,
	}
}

func (r *ProviderRegistry) NewProvider(apiKey string) (generation.ProviderClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai: empty credential")
	}
	switch r.transport {
	case TransportNative:
		if r.geminiClient == nil || gemini.RestyClient == nil {
			return nil, fmt.Errorf("genai: native transport not initialized")
		}
		return NewNativeProvider(r.geminiClient, apiKey, r.model, r.temperature, r.maxTokens), nil
	default:
		return NewOpenAICompatProvider(apiKey, r.openAIBaseURL, r.model, r.temperature, r.maxTokens), nil
	}
}

func (r *ProviderRegistry) Transport() string { return r.transport }

func (r *ProviderRegistry) Available() bool {
	if r.transport == TransportNative {
		return r.geminiClient != nil && gemini.RestyClient != nil
	}
	return true
}
