package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Nothing listens on port 1, so every call fails fast.
func TestRedisCache_UnreachableServerIsAMiss(t *testing.T) {
	cache := NewRedisCache("127.0.0.1:1")
	defer cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, ok := cache.Get(ctx, "projection:abc")
	assert.False(t, ok)

	assert.Error(t, cache.Set(ctx, "projection:abc", "v", time.Minute))
	assert.Error(t, cache.Ping(ctx))
}
