// ABOUTME: Validates raw tweet records and reshapes them into canonical tweets
// ABOUTME: Invalid records are dropped and optionally reported to a monitoring channel

package tweets

import (
	"context"
	"fmt"
	"time"

	"tweets-app-api/core/domain"
	"tweets-app-api/core/interfaces"
)

// createdAtFormats are tried in order when parsing a raw createdAt value.
// The upstream API is ISO-8601 most of the time but looser date strings
// have been observed.
var createdAtFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Normalizer filters raw records down to valid canonical tweets.
type Normalizer struct {
	notifier interfaces.Notifier
	logger   interfaces.Logger
}

// NewNormalizer creates a normalizer. notifier and logger may be nil.
func NewNormalizer(notifier interfaces.Notifier, logger interfaces.Logger) *Normalizer {
	return &Normalizer{
		notifier: notifier,
		logger:   logger,
	}
}

// Normalize converts raw records into canonical tweets, preserving input
// order. Records missing a required field or carrying an unparseable
// createdAt are dropped; dropping never fails the pipeline.
func (n *Normalizer) Normalize(ctx context.Context, raw []domain.RawTweet) []domain.Tweet {
	items := make([]domain.Tweet, 0, len(raw))

	for _, record := range raw {
		missing := missingFields(record)
		if len(missing) > 0 {
			n.reportDropped(ctx, missing, "missing required fields")
			continue
		}

		createdAt, ok := parseCreatedAt(record.CreatedAt)
		if !ok {
			n.reportDropped(ctx, nil, fmt.Sprintf("unparseable createdAt %q", record.CreatedAt))
			continue
		}

		items = append(items, domain.Tweet{
			ID:        record.ID,
			Text:      record.Text,
			CreatedAt: createdAt,
			UserName:  record.User.UserName,
		})
	}

	return items
}

// missingFields returns which of the required raw fields are absent.
// The author name lives under the nested user object.
func missingFields(record domain.RawTweet) []string {
	var missing []string

	if record.ID == "" {
		missing = append(missing, "id")
	}
	if record.Text == "" {
		missing = append(missing, "text")
	}
	if record.CreatedAt == "" {
		missing = append(missing, "createdAt")
	}
	if record.User == nil || record.User.UserName == "" {
		missing = append(missing, "user.userName")
	}

	return missing
}

// parseCreatedAt attempts each accepted timestamp format in order
func parseCreatedAt(value string) (time.Time, bool) {
	for _, format := range createdAtFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (n *Normalizer) reportDropped(ctx context.Context, missing []string, reason string) {
	if n.notifier != nil {
		n.notifier.NotifyInvalidRecord(ctx, missing, reason)
	}
	if n.logger != nil {
		n.logger.Warn("Dropped invalid tweet record", map[string]interface{}{
			"missing_fields": missing,
			"reason":         reason,
		})
	}
}
