package healthcheck

import (
	"context"
	"time"

	"github.com/mileusna/crontab"
	"github.com/sirupsen/logrus"

	"abled.ai/abled-api-gateway/app/infrastructure/cache"
	"abled.ai/abled-api-gateway/app/utils/httpclients/gemini"
	"abled.ai/abled-api-gateway/app/utils/logger"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

// HealthcheckCrontabService runs the periodic background work: probing
// the upstream with the primary credential, reloading environment
// overrides and sweeping the response cache. This is the only scheduled
// network activity; request handling itself never runs background loops.
type HealthcheckCrontabService struct {
	GeminiClient  *gemini.Client
	CacheService  cache.CacheService
	ResponseCache *cache.ResponseCache
}

func NewService(geminiClient *gemini.Client, cacheService cache.CacheService, responseCache *cache.ResponseCache) *HealthcheckCrontabService {
	return &HealthcheckCrontabService{
		GeminiClient:  geminiClient,
		CacheService:  cacheService,
		ResponseCache: responseCache,
	}
}

func (hs *HealthcheckCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) {
	hs.ProbeUpstream(ctx)
	// Check every 2 minutes
	ctab.AddJob("*/2 * * * *", func() {
		hs.ProbeUpstream(ctx)
		environment_variables.EnvironmentVariables.LoadFromEnv()
		if removed := hs.ResponseCache.Sweep(); removed > 0 {
			logger.GetLogger().WithFields(logrus.Fields{"removed": removed}).Debug("response cache sweep")
		}
	})
}

// ProbeUpstream lists models with the primary credential so credential
// or connectivity problems show up in logs before a student hits them.
// The redsync lock keeps a multi-replica deployment from probing in
// parallel; without redis the lock is nil and probing is per-replica.
func (hs *HealthcheckCrontabService) ProbeUpstream(ctx context.Context) {
	keys := environment_variables.EnvironmentVariables.GeminiAPIKeys()
	if len(keys) == 0 {
		logger.GetLogger().Warn("healthcheck: no Gemini credentials configured")
		return
	}

	if mutex := hs.CacheService.NewMutex(cache.UpstreamProbeLockKey); mutex != nil {
		if err := mutex.Lock(); err != nil {
			return
		}
		defer func() {
			_, _ = mutex.Unlock()
		}()
	}

	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	models, err := hs.GeminiClient.ListModels(probeCtx, keys[0])
	if err != nil {
		logger.GetLogger().WithFields(logrus.Fields{"error": err.Error()}).Warn("healthcheck: upstream probe failed")
		return
	}
	logger.GetLogger().WithFields(logrus.Fields{"models": len(models)}).Debug("healthcheck: upstream reachable")
}
