// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"tweets-app-api/api/dto/responses"
	"tweets-app-api/core/domain"
)

// ToGetTweetsResponse assembles the response body from a pipeline result
func ToGetTweetsResponse(result *domain.TweetPage) *responses.GetTweetsResponse {
	if result == nil {
		return nil
	}

	return &responses.GetTweetsResponse{
		Tweets:     ToTweetResponses(result.Page.Items),
		Pagination: ToPaginationResponse(result.Page),
		Analytics:  ToAnalyticsResponse(result.Analytics),
	}
}

// ToTweetResponses converts a page of domain tweets to response DTOs
func ToTweetResponses(items []domain.Tweet) []responses.TweetResponse {
	tweets := make([]responses.TweetResponse, 0, len(items))
	for _, item := range items {
		tweets = append(tweets, responses.TweetResponse{
			ID:        item.ID,
			Text:      item.Text,
			CreatedAt: item.CreatedAt,
			User: responses.UserResponse{
				UserName: item.UserName,
			},
		})
	}
	return tweets
}

// ToPaginationResponse converts pagination metadata to its response DTO
func ToPaginationResponse(page domain.PageResult) responses.PaginationResponse {
	return responses.PaginationResponse{
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		HasMore:     page.HasMore,
	}
}

// ToAnalyticsResponse converts analytics to its response DTO.
// A nil input stays nil, which serializes as JSON null.
func ToAnalyticsResponse(analytics *domain.Analytics) *responses.AnalyticsResponse {
	if analytics == nil {
		return nil
	}

	return &responses.AnalyticsResponse{
		TotalTweets:          analytics.TotalTweets,
		LongestTweetID:       analytics.LongestTweetID,
		MaxDaysBetweenTweets: analytics.MaxDaysBetweenTweets,
		MostPopularHashtag:   analytics.MostPopularHashtag,
		MostTweetsPerDay:     analytics.MostTweetsPerDay,
		TweetsPerDay:         analytics.TweetsPerDay,
	}
}
