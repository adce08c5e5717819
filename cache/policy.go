package cache

import "time"

const defaultMaxAgeInDays = 7

// CachePolicy decides whether a cached feed is still fresh
type CachePolicy struct {
	MaxAgeInDays int
}

func DefaultCachePolicy() CachePolicy {
	return CachePolicy{MaxAgeInDays: defaultMaxAgeInDays}
}

// Validate reports whether a feed cached at timestamp is still valid at now
func (p CachePolicy) Validate(timestamp, now time.Time) bool {
	maxAge := timestamp.AddDate(0, 0, p.MaxAgeInDays)
	return now.Before(maxAge)
}
