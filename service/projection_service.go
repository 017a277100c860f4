package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"compound-interest/domain"
	"compound-interest/repository"
)

type ProjectionService struct {
	cache    repository.CacheRepository
	ttl      time.Duration
	maxYears int
	log      zerolog.Logger
}

// NewProjectionService creates a ProjectionService backed by cache.
// maxYears <= 0 disables the year limit.
func NewProjectionService(
	cache repository.CacheRepository,
	ttl time.Duration,
	maxYears int,
	log zerolog.Logger,
) *ProjectionService {
	return &ProjectionService{
		cache:    cache,
		ttl:      ttl,
		maxYears: maxYears,
		log:      log.With().Str("service", "projection").Logger(),
	}
}

// Project returns the yearly summary of inv, serving repeated inputs
// from the cache.
func (s *ProjectionService) Project(
	ctx context.Context,
	inv domain.Investment,
) ([]domain.YearlySnapshot, error) {

	if err := CheckYears(inv, s.maxYears); err != nil {
		return nil, err
	}

	key := CacheKey(inv)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var summary []domain.YearlySnapshot
		err := msgpack.Unmarshal([]byte(cached), &summary)
		if err == nil {
			s.log.Debug().Str("key", key).Msg("Projection served from cache")
			return ensureSlice(summary), nil
		}
		s.log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
	}

	summary := YearlySummary(inv)

	// Caching is not critical; a failure only costs a recomputation.
	encoded, err := msgpack.Marshal(summary)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to encode projection for cache")
		return summary, nil
	}
	if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to cache projection")
	}

	return summary, nil
}

// CheckYears rejects projections longer than maxYears. maxYears <= 0
// disables the check.
func CheckYears(inv domain.Investment, maxYears int) error {
	if maxYears > 0 && inv.Years > maxYears {
		return fmt.Errorf("%w: years exceeds the maximum of %d", domain.ErrInvalidInput, maxYears)
	}
	return nil
}

// CacheKey identifies inv by the exact bits of its inputs.
func CacheKey(inv domain.Investment) string {
	var buf []byte
	buf = strconv.AppendUint(buf, math.Float64bits(inv.Principal), 16)
	buf = append(buf, '|')
	buf = strconv.AppendUint(buf, math.Float64bits(inv.Contribution), 16)
	buf = append(buf, '|')
	buf = strconv.AppendUint(buf, math.Float64bits(inv.Rate), 16)
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, int64(inv.Years), 10)

	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(buf), 16)
}

// msgpack decodes an empty array as nil; callers expect [] on the wire.
func ensureSlice(summary []domain.YearlySnapshot) []domain.YearlySnapshot {
	if summary == nil {
		return []domain.YearlySnapshot{}
	}
	return summary
}
