// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"tweets-app-api/api/dto/requests"
	"tweets-app-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsUpstream(err) {
		var upstreamErr *errors.UpstreamError
		if stderrors.As(err, &upstreamErr) {
			// Map upstream status codes to our API status codes
			switch {
			case upstreamErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("External service error", err)
			case upstreamErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by external service")
			case upstreamErr.StatusCode >= 400:
				return huma.Error400BadRequest("External service request error", err)
			case upstreamErr.StatusCode == 0:
				// The request never completed (timeout, connection failure)
				return huma.Error504GatewayTimeout("External service unreachable", err)
			default:
				return huma.Error500InternalServerError("Unexpected external service response", err)
			}
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}

// fieldErrorsToHuma converts request field errors to a 400 response with
// per-field detail
func fieldErrorsToHuma(fieldErrs []requests.FieldError) error {
	details := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, &huma.ErrorDetail{
			Message:  fe.Message,
			Location: "query." + fe.Field,
		})
	}
	return huma.Error400BadRequest("Invalid request parameters", details...)
}
