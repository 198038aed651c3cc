// ABOUTME: Authenticated retrieval of raw tweet records from the upstream API
// ABOUTME: Non-2xx responses become UpstreamError with the upstream status and body

package tweets

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"tweets-app-api/core/domain"
	"tweets-app-api/core/errors"
)

// FetchTweets retrieves the raw tweet records for one user from the
// configured upstream endpoint, passing the user name as a query
// parameter and the API token as a bearer credential. No retries are
// performed; a failure surfaces as *errors.UpstreamError carrying the
// upstream status code and message for the caller to map.
func (s *TweetService) FetchTweets(ctx context.Context, userName string) ([]domain.RawTweet, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.WrapError(errHTTPClientMissing, "fetching tweets")
	}

	query := url.Values{}
	query.Set("userName", userName)
	requestURL := s.apiURL + "?" + query.Encode()

	headers := map[string]string{
		"Authorization": "Bearer " + s.apiToken,
		"Accept":        "application/json",
	}

	resp, err := s.deps.HTTPClient.Get(ctx, requestURL, headers)
	if err != nil {
		// Transport failures, including timeouts, have no upstream status
		return nil, &errors.UpstreamError{
			StatusCode: 0,
			Message:    err.Error(),
		}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		// The response never arrived in full; treat it like a transport
		// failure rather than an upstream verdict
		return nil, &errors.UpstreamError{
			StatusCode: 0,
			Message:    err.Error(),
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.UpstreamError{
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var raw []domain.RawTweet
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &errors.UpstreamError{
			StatusCode: resp.StatusCode(),
			Message:    "invalid response body: " + err.Error(),
		}
	}

	return raw, nil
}
