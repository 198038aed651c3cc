package mappers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tweets-app-api/core/domain"
)

func TestToGetTweetsResponse(t *testing.T) {
	created := time.Date(2018, 6, 14, 12, 0, 0, 0, time.UTC)
	result := &domain.TweetPage{
		Page: domain.PageResult{
			Items:      []domain.Tweet{{ID: "1", Text: "hi #go", CreatedAt: created, UserName: "jack"}},
			Page:       1,
			PerPage:    10,
			TotalItems: 1,
			TotalPages: 1,
			HasMore:    false,
		},
		Analytics: &domain.Analytics{
			TotalTweets:        1,
			LongestTweetID:     "1",
			MostPopularHashtag: "#go",
			MostTweetsPerDay:   1,
			TweetsPerDay:       map[string]int{"2018-06-14": 1},
		},
	}

	resp := ToGetTweetsResponse(result)

	if len(resp.Tweets) != 1 {
		t.Fatalf("Tweets has %d entries, want 1", len(resp.Tweets))
	}
	if resp.Tweets[0].User.UserName != "jack" {
		t.Errorf("User.UserName = %v, want jack", resp.Tweets[0].User.UserName)
	}
	if resp.Pagination.CurrentPage != 1 || resp.Pagination.TotalItems != 1 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
	if resp.Analytics == nil || resp.Analytics.MostPopularHashtag != "#go" {
		t.Errorf("analytics = %+v", resp.Analytics)
	}
}

func TestToGetTweetsResponse_Nil(t *testing.T) {
	if resp := ToGetTweetsResponse(nil); resp != nil {
		t.Errorf("ToGetTweetsResponse(nil) = %+v, want nil", resp)
	}
}

func TestToAnalyticsResponse_NilStaysNil(t *testing.T) {
	if resp := ToAnalyticsResponse(nil); resp != nil {
		t.Errorf("ToAnalyticsResponse(nil) = %+v, want nil", resp)
	}
}

func TestToTweetResponses_EmptySliceNotNil(t *testing.T) {
	tweets := ToTweetResponses(nil)
	if tweets == nil {
		t.Error("ToTweetResponses(nil) should return an empty slice, not nil")
	}
}

// The serialized shape is the public contract; pin the key names.
func TestResponseJSONContract(t *testing.T) {
	result := &domain.TweetPage{
		Page: domain.PageResult{
			Items:   []domain.Tweet{{ID: "1", Text: "hi", CreatedAt: time.Now(), UserName: "jack"}},
			Page:    1,
			PerPage: 10, TotalItems: 1, TotalPages: 1,
		},
		Analytics: &domain.Analytics{TweetsPerDay: map[string]int{}},
	}

	data, err := json.Marshal(ToGetTweetsResponse(result))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(data)
	for _, key := range []string{
		`"tweets"`, `"userName"`, `"createdAt"`,
		`"current_page"`, `"per_page"`, `"total_items"`, `"total_pages"`, `"has_more"`,
		`"totalTweets"`, `"longestTweetId"`, `"maxDaysBetweenTweets"`,
		`"mostPopularHashtag"`, `"mostNumberOfTweetsPerDay"`, `"numberOfTweetsPerDay"`,
	} {
		if !strings.Contains(body, key) {
			t.Errorf("response JSON missing key %s: %s", key, body)
		}
	}
}

func TestResponseJSONContract_NullAnalytics(t *testing.T) {
	result := &domain.TweetPage{
		Page: domain.PageResult{Items: []domain.Tweet{}, Page: 1, PerPage: 10},
	}

	data, err := json.Marshal(ToGetTweetsResponse(result))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if !strings.Contains(string(data), `"analytics":null`) {
		t.Errorf("empty-set analytics should serialize as null: %s", data)
	}
}
