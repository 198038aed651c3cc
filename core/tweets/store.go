// ABOUTME: TTL-memoized store for normalized tweet sets keyed by user name
// ABOUTME: Coalesces concurrent cache misses so each key triggers one upstream fetch

package tweets

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"tweets-app-api/core/domain"
	"tweets-app-api/core/interfaces"
)

// Store memoizes computed tweet sets in an injected cache backend.
// Values are stored pre-sorted as JSON, so hits skip fetch, normalization
// and sorting entirely.
type Store struct {
	cache interfaces.Cache
	group singleflight.Group
}

// NewStore creates a store backed by the given cache
func NewStore(cache interfaces.Cache) *Store {
	return &Store{cache: cache}
}

// GetOrCompute returns the cached tweet set for key, or invokes compute,
// stores its result with the given TTL and returns it. While a computation
// for a key is in flight, concurrent callers for that same key wait for it
// and share its result rather than fetching again; callers for other keys
// proceed independently. A failed compute leaves no cache entry.
func (s *Store) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() ([]domain.Tweet, error)) ([]domain.Tweet, error) {
	if cached, ok := s.lookup(ctx, key); ok {
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		// A previous flight may have filled the cache while this caller
		// was waiting to enter the group.
		if cached, ok := s.lookup(ctx, key); ok {
			return cached, nil
		}

		items, err := compute()
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}

		// Cache write failures are not fatal; the result is still valid
		_ = s.cache.Set(ctx, key, data, ttl)

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]domain.Tweet), nil
}

// lookup reads and decodes a cached tweet set. An absent, expired or
// undecodable entry is a miss.
func (s *Store) lookup(ctx context.Context, key string) ([]domain.Tweet, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var items []domain.Tweet
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}

	return items, true
}
