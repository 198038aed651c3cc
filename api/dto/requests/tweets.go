// ABOUTME: Request DTOs for tweet-related API endpoints
// ABOUTME: Provides explicit validation and default values for incoming requests

package requests

import "fmt"

// FieldError describes a single invalid request parameter
type FieldError struct {
	Field   string `json:"field" doc:"Name of the invalid parameter"`
	Message string `json:"message" doc:"What is wrong with it"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GetTweetsRequest represents the query parameters of the tweets endpoint
type GetTweetsRequest struct {
	// UserName is the account whose tweets are requested
	UserName string `query:"userName" required:"true" minLength:"1" maxLength:"255" doc:"User whose tweets to fetch"`

	// Page is the page number for pagination (1-based)
	Page int `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`

	// PerPage is the number of tweets per page
	PerPage int `query:"per_page" minimum:"1" maximum:"100" default:"10" doc:"Number of tweets per page"`
}

// ApplyDefaults sets default values for optional fields
func (r *GetTweetsRequest) ApplyDefaults() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.PerPage == 0 {
		r.PerPage = 10
	}
}

// Validate checks the request parameters and returns one FieldError per
// invalid field. Zero page/per_page values mean "unspecified" and pass;
// call ApplyDefaults afterwards.
func (r *GetTweetsRequest) Validate() []FieldError {
	var errs []FieldError

	if r.UserName == "" {
		errs = append(errs, FieldError{Field: "userName", Message: "is required"})
	} else if len(r.UserName) > 255 {
		errs = append(errs, FieldError{Field: "userName", Message: "must be at most 255 characters"})
	}

	if r.Page < 0 {
		errs = append(errs, FieldError{Field: "page", Message: "must be a positive integer"})
	}

	if r.PerPage < 0 {
		errs = append(errs, FieldError{Field: "per_page", Message: "must be a positive integer"})
	} else if r.PerPage > 100 {
		errs = append(errs, FieldError{Field: "per_page", Message: "must be at most 100"})
	}

	return errs
}
