// ABOUTME: Tweet domain models for the tweet pipeline
// ABOUTME: Defines the canonical tweet shape, pagination and analytics results

package domain

import "time"

// RawTweet is the wire shape returned by the upstream tweets API.
// Any of its fields may be missing; the normalizer decides validity.
type RawTweet struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"createdAt"`
	User      *RawUser `json:"user"`
}

// RawUser is the nested user object of a raw tweet.
type RawUser struct {
	ID       string `json:"id,omitempty"`
	UserName string `json:"userName"`
}

// Tweet is a normalized, immutable tweet. Only tweets that passed
// validation exist in this form.
type Tweet struct {
	// ID is the upstream identifier, unique within a result set
	ID string `json:"id"`

	// Text is the tweet body
	Text string `json:"text"`

	// CreatedAt is the parsed creation timestamp
	CreatedAt time.Time `json:"createdAt"`

	// UserName is the author's handle, flattened from the raw user object
	UserName string `json:"userName"`
}

// PageResult is one page of a tweet set plus pagination metadata.
type PageResult struct {
	// Items is the sub-range of the full set for the requested page
	Items []Tweet

	// Page is the 1-based page number
	Page int

	// PerPage is the page size used for slicing
	PerPage int

	// TotalItems is the size of the full set
	TotalItems int

	// TotalPages is ceil(TotalItems / PerPage), 0 for an empty set
	TotalPages int

	// HasMore reports whether pages exist beyond this one
	HasMore bool
}

// Analytics holds the aggregate statistics over a full tweet set.
// A nil *Analytics means the set was empty.
type Analytics struct {
	// TotalTweets is the number of tweets in the set
	TotalTweets int

	// LongestTweetID is the id of the tweet with the longest text,
	// measured in bytes; ties keep the earliest tweet in set order
	LongestTweetID string

	// MaxDaysBetweenTweets is the largest whole-day gap between
	// consecutive tweets of the sorted set
	MaxDaysBetweenTweets int

	// MostPopularHashtag is the hashtag with the highest occurrence
	// count across all tweets, empty when no tweet has a hashtag
	MostPopularHashtag string

	// MostTweetsPerDay is the highest single-day tweet count
	MostTweetsPerDay int

	// TweetsPerDay maps UTC calendar dates (YYYY-MM-DD) to tweet counts
	TweetsPerDay map[string]int
}

// TweetPage is the assembled result of one pipeline run: the requested
// page plus analytics computed over the full cached set.
type TweetPage struct {
	Page      PageResult
	Analytics *Analytics
}
