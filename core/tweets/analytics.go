// ABOUTME: Aggregate statistics over a full tweet set
// ABOUTME: Five independent pure computations, assembled by Analyze

package tweets

import (
	"regexp"

	"tweets-app-api/core/domain"
)

// hashtagPattern matches a '#' followed by one or more word characters
var hashtagPattern = regexp.MustCompile(`#\w+`)

// Analyze computes all aggregate statistics over the full tweet set.
// Returns nil for an empty set; the caller renders that as an absent
// analytics value. The input is expected in stored order, sorted
// ascending by CreatedAt.
func Analyze(items []domain.Tweet) *domain.Analytics {
	if len(items) == 0 {
		return nil
	}

	perDay := TweetsPerDay(items)

	return &domain.Analytics{
		TotalTweets:          TotalTweets(items),
		LongestTweetID:       LongestTweetID(items),
		MaxDaysBetweenTweets: MaxDaysBetweenTweets(items),
		MostPopularHashtag:   MostPopularHashtag(items),
		MostTweetsPerDay:     MostTweetsPerDay(perDay),
		TweetsPerDay:         perDay,
	}
}

// TotalTweets returns the number of tweets in the set
func TotalTweets(items []domain.Tweet) int {
	return len(items)
}

// LongestTweetID returns the id of the tweet with the longest text,
// measured in bytes. Ties keep the first such tweet in set order.
// Returns an empty string for an empty set.
func LongestTweetID(items []domain.Tweet) string {
	longestID := ""
	longestLen := -1

	for _, item := range items {
		if len(item.Text) > longestLen {
			longestLen = len(item.Text)
			longestID = item.ID
		}
	}

	return longestID
}

// MaxDaysBetweenTweets returns the largest whole-day gap between
// consecutive tweets. The input must be sorted ascending by CreatedAt,
// which holds for any stored tweet set. Returns 0 for fewer than two
// tweets.
func MaxDaysBetweenTweets(items []domain.Tweet) int {
	maxDays := 0

	for i := 0; i+1 < len(items); i++ {
		days := int(items[i+1].CreatedAt.Sub(items[i].CreatedAt).Hours() / 24)
		if days > maxDays {
			maxDays = days
		}
	}

	return maxDays
}

// MostPopularHashtag returns the hashtag with the highest occurrence
// count across all tweet texts. When several hashtags share the maximum,
// the first one to reach it in scan order wins. Returns an empty string
// when no tweet contains a hashtag.
func MostPopularHashtag(items []domain.Tweet) string {
	counts := make(map[string]int)
	best := ""
	bestCount := 0

	for _, item := range items {
		for _, tag := range hashtagPattern.FindAllString(item.Text, -1) {
			counts[tag]++
			if counts[tag] > bestCount {
				bestCount = counts[tag]
				best = tag
			}
		}
	}

	return best
}

// TweetsPerDay maps each UTC calendar date (YYYY-MM-DD) to the number of
// tweets created on that date
func TweetsPerDay(items []domain.Tweet) map[string]int {
	perDay := make(map[string]int, len(items))

	for _, item := range items {
		date := item.CreatedAt.UTC().Format("2006-01-02")
		perDay[date]++
	}

	return perDay
}

// MostTweetsPerDay returns the highest single-day count in the per-day
// mapping, 0 when the mapping is empty
func MostTweetsPerDay(perDay map[string]int) int {
	most := 0
	for _, count := range perDay {
		if count > most {
			most = count
		}
	}
	return most
}
