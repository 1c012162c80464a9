// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SlotLockPrefix is the prefix used for Redis slot reservation keys.
const SlotLockPrefix = "slot:"

// SlotLockTTL bounds how long a slot reservation is held while a
// booking creation is in flight.
const SlotLockTTL = 15 * time.Second
