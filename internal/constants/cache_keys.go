package constants

// CachePrefix namespaces cache entries so invalidation can target one concern.
type CachePrefix string

const (
	CachePrefixTeamPage     CachePrefix = "page:team"
	CachePrefixChapterPages CachePrefix = "page:chapters"
	CachePrefixOverview     CachePrefix = "page:overview"
)
