package service

import "time"

const (
	DefaultMaxYears = 1000 // requests above this are rejected by the server
	DefaultCacheTTL = 10 * time.Minute

	cacheKeyPrefix       = "projection:"
	maxPreallocatedYears = 4096
)
