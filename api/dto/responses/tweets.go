// ABOUTME: Response DTOs for tweet-related API endpoints
// ABOUTME: Provides structured responses matching the public JSON contract

package responses

import "time"

// TweetResponse represents a single tweet in API responses
type TweetResponse struct {
	ID        string       `json:"id" doc:"Unique identifier of the tweet"`
	Text      string       `json:"text" doc:"Tweet body"`
	CreatedAt time.Time    `json:"createdAt" doc:"Creation timestamp"`
	User      UserResponse `json:"user" doc:"Tweet author"`
}

// UserResponse represents the author of a tweet
type UserResponse struct {
	UserName string `json:"userName" doc:"Author's handle"`
}

// PaginationResponse carries pagination metadata for the current page
type PaginationResponse struct {
	CurrentPage int  `json:"current_page" doc:"Requested page number (1-based)"`
	PerPage     int  `json:"per_page" doc:"Page size used for slicing"`
	TotalItems  int  `json:"total_items" doc:"Total tweets in the full set"`
	TotalPages  int  `json:"total_pages" doc:"Total number of pages"`
	HasMore     bool `json:"has_more" doc:"Whether pages exist beyond this one"`
}

// AnalyticsResponse carries the aggregate statistics over the full tweet
// set. The whole object is null when the set is empty.
type AnalyticsResponse struct {
	TotalTweets          int            `json:"totalTweets" doc:"Number of tweets in the set"`
	LongestTweetID       string         `json:"longestTweetId" doc:"Id of the tweet with the longest text"`
	MaxDaysBetweenTweets int            `json:"maxDaysBetweenTweets" doc:"Largest whole-day gap between consecutive tweets"`
	MostPopularHashtag   string         `json:"mostPopularHashtag" doc:"Most frequent hashtag, empty when none"`
	MostTweetsPerDay     int            `json:"mostNumberOfTweetsPerDay" doc:"Highest single-day tweet count"`
	TweetsPerDay         map[string]int `json:"numberOfTweetsPerDay" doc:"Tweet count per UTC calendar date"`
}

// GetTweetsResponse is the body of a successful tweets request
type GetTweetsResponse struct {
	Tweets     []TweetResponse    `json:"tweets" doc:"Requested page of tweets"`
	Pagination PaginationResponse `json:"pagination" doc:"Pagination metadata"`
	Analytics  *AnalyticsResponse `json:"analytics" doc:"Aggregate statistics, null for an empty set"`
}
