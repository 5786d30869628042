package infrastructure

import (
	"github.com/google/wire"

	"abled.ai/abled-api-gateway/app/domain/generation"
	"abled.ai/abled-api-gateway/app/infrastructure/cache"
	"abled.ai/abled-api-gateway/app/infrastructure/genai"
	catboxclient "abled.ai/abled-api-gateway/app/utils/httpclients/catbox"
	geminiclient "abled.ai/abled-api-gateway/app/utils/httpclients/gemini"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

// NewFallbackDispatcher binds the configured credentials to the active
// provider transport. Key order follows the env slot order, so the first
// configured key is always tried first.
func NewFallbackDispatcher(registry *genai.ProviderRegistry) *generation.FallbackDispatcher {
	return generation.NewFallbackDispatcher(
		environment_variables.EnvironmentVariables.GeminiAPIKeys(),
		registry,
	)
}

var InfrastructureProvider = wire.NewSet(
	geminiclient.NewClient,
	catboxclient.NewClient,
	genai.NewProviderRegistry,
	NewFallbackDispatcher,
	cache.NewCacheService,
	cache.NewResponseCache,
)
