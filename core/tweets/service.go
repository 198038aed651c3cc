// ABOUTME: Tweet service orchestrates the fetch/normalize/cache/paginate/analyze pipeline
// ABOUTME: Provides business logic for tweet operations independent of HTTP layer

package tweets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tweets-app-api/core/domain"
	coreerrors "tweets-app-api/core/errors"
	"tweets-app-api/core/interfaces"
)

// DefaultCacheTTL is how long a fetched tweet set stays fresh
const DefaultCacheTTL = 1800 * time.Second

// MaxPerPage bounds the page size a caller may request
const MaxPerPage = 100

// maxUserNameLength bounds the user key length
const maxUserNameLength = 255

var errHTTPClientMissing = errors.New("HTTP client not configured")

// Config holds the upstream and caching settings of the tweet service
type Config struct {
	// APIURL is the upstream tweets endpoint
	APIURL string

	// APIToken is the bearer credential sent with every fetch
	APIToken string

	// CacheTTL overrides DefaultCacheTTL when positive
	CacheTTL time.Duration
}

// TweetService handles tweet retrieval, caching and aggregation
type TweetService struct {
	deps       interfaces.Dependencies
	store      *Store
	normalizer *Normalizer
	apiURL     string
	apiToken   string
	cacheTTL   time.Duration
}

// NewTweetService creates a new tweet service instance
func NewTweetService(deps interfaces.Dependencies, cfg Config) *TweetService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &TweetService{
		deps:       deps,
		store:      NewStore(deps.Cache),
		normalizer: NewNormalizer(nil, deps.Logger),
		apiURL:     cfg.APIURL,
		apiToken:   cfg.APIToken,
		cacheTTL:   ttl,
	}
}

// SetNotifier sets the monitoring channel that receives dropped-record
// reports from the normalizer
func (s *TweetService) SetNotifier(notifier interfaces.Notifier) {
	s.normalizer = NewNormalizer(notifier, s.deps.Logger)
}

// GetTweets returns one page of the user's tweet set plus analytics
// computed over the full set. The full set comes from the cache; a miss
// triggers a single upstream fetch, shared by all concurrent callers for
// the same user. Upstream failures propagate unchanged.
func (s *TweetService) GetTweets(ctx context.Context, userName string, page, perPage int) (*domain.TweetPage, error) {
	if err := validateRequest(userName, page, perPage); err != nil {
		return nil, err
	}

	// Zero means unspecified
	if page == 0 {
		page = DefaultPage
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}

	cacheKey := fmt.Sprintf("tweets:%s", userName)

	items, err := s.store.GetOrCompute(ctx, cacheKey, s.cacheTTL, func() ([]domain.Tweet, error) {
		raw, err := s.FetchTweets(ctx, userName)
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Error("Failed to fetch tweets", map[string]interface{}{
					"userName": userName,
					"error":    err.Error(),
				})
			}
			return nil, err
		}

		normalized := s.normalizer.Normalize(ctx, raw)

		// Sort once before storage; cached sets are always pre-sorted.
		// The sort is stable so records sharing a timestamp keep their
		// fetch order.
		sort.SliceStable(normalized, func(i, j int) bool {
			return normalized[i].CreatedAt.Before(normalized[j].CreatedAt)
		})

		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Fetched and normalized tweets", map[string]interface{}{
				"userName": userName,
				"fetched":  len(raw),
				"valid":    len(normalized),
			})
		}

		return normalized, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.TweetPage{
		Page:      Paginate(items, page, perPage),
		Analytics: Analyze(items),
	}, nil
}

// validateRequest defensively rejects obviously invalid parameters when
// the service is called directly, bypassing the request layer. Zero page
// and perPage mean "unspecified" and are not errors.
func validateRequest(userName string, page, perPage int) error {
	if userName == "" {
		return &coreerrors.ValidationError{Field: "userName", Message: "cannot be empty"}
	}
	if len(userName) > maxUserNameLength {
		return &coreerrors.ValidationError{Field: "userName", Message: "must be at most 255 characters"}
	}
	if page < 0 {
		return &coreerrors.ValidationError{Field: "page", Message: "must be a positive integer"}
	}
	if perPage < 0 {
		return &coreerrors.ValidationError{Field: "per_page", Message: "must be a positive integer"}
	}
	if perPage > MaxPerPage {
		return &coreerrors.ValidationError{Field: "per_page", Message: "must be at most 100"}
	}
	return nil
}
