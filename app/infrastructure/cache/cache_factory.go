package cache

import (
	"strings"

	"abled.ai/abled-api-gateway/config/environment_variables"
)

// NewCacheService creates the shared cache service based on
// configuration. Without a configured backend the no-op variant is used.
func NewCacheService() CacheService {
	env := &environment_variables.EnvironmentVariables
	cacheType := strings.ToLower(env.CACHE_TYPE)

	if cacheType == "" {
		if env.CACHE_URL != "" || env.REDIS_URL != "" {
			cacheType = "redis"
		} else {
			cacheType = "noop"
		}
	}

	switch cacheType {
	case "redis":
		return NewRedisCacheService()
	default:
		return &NoOpCacheService{}
	}
}
