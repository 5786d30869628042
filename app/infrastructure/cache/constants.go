package cache

const (
	CacheVersion            = "v1"
	RevokedTokenKeyPattern  = CacheVersion + ":auth:revoked:%s"
	UpstreamProbeLockKey    = CacheVersion + ":healthcheck:probe:lock"
)
