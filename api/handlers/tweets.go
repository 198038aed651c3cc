// ABOUTME: Tweet handlers for the Huma API
// ABOUTME: Provides the HTTP endpoint serving paginated tweets with analytics

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"tweets-app-api/api/dto/mappers"
	"tweets-app-api/api/dto/requests"
	"tweets-app-api/api/dto/responses"
	"tweets-app-api/core/domain"
)

// TweetService interface defines the methods needed from the tweet service
type TweetService interface {
	GetTweets(ctx context.Context, userName string, page, perPage int) (*domain.TweetPage, error)
}

// TweetsHandler handles tweet-related HTTP requests
type TweetsHandler struct {
	tweetService TweetService
}

// NewTweetsHandler creates a new tweets handler
func NewTweetsHandler(tweetService TweetService) *TweetsHandler {
	return &TweetsHandler{
		tweetService: tweetService,
	}
}

// RegisterRoutes registers all tweet-related routes
func (h *TweetsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getTweets",
		Method:      http.MethodGet,
		Path:        "/tweets",
		Summary:     "Get a user's tweets",
		Description: "Returns one page of the user's tweets plus analytics over the full set",
		Tags:        []string{"Tweets"},
	}, h.GetTweets)
}

// GetTweetsInput defines the input for the GetTweets operation
type GetTweetsInput struct {
	UserName string `query:"userName" required:"true" minLength:"1" maxLength:"255" doc:"User whose tweets to fetch"`
	Page     int    `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage  int    `query:"per_page" minimum:"1" maximum:"100" default:"10" doc:"Number of tweets per page"`
}

// GetTweetsOutput defines the output for the GetTweets operation
type GetTweetsOutput struct {
	Body responses.GetTweetsResponse
}

// GetTweets handles the GET /tweets endpoint
func (h *TweetsHandler) GetTweets(ctx context.Context, input *GetTweetsInput) (*GetTweetsOutput, error) {
	req := requests.GetTweetsRequest{
		UserName: input.UserName,
		Page:     input.Page,
		PerPage:  input.PerPage,
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrorsToHuma(fieldErrs)
	}
	req.ApplyDefaults()

	result, err := h.tweetService.GetTweets(ctx, req.UserName, req.Page, req.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetTweetsOutput{Body: *mappers.ToGetTweetsResponse(result)}, nil
}
