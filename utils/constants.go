// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// WeekViewCachePrefix is the prefix for cached week-view layouts.
const WeekViewCachePrefix = "weekview:"

// WeekViewCacheTTL bounds staleness of cached week views between invalidations.
const WeekViewCacheTTL = 5 * time.Minute
