package utils

import "time"

// RefreshCachePrefix is the prefix for Redis token-refresh cache keys.
const RefreshCachePrefix = "refresh:"

// RefreshCacheTTL is how long a freshly minted token pair stays cached
// against its refresh-token hash, so concurrent requests across instances
// reuse one refresh instead of racing the identity service.
const RefreshCacheTTL = 30 * time.Second

// CatalogCachePrefix is the prefix for Redis service-catalog cache keys.
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL bounds how long a cached grouped catalog may lag behind
// admin edits to services or groups.
const CatalogCacheTTL = 60 * time.Second
