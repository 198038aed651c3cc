// ABOUTME: Offset pagination over tweet sets
// ABOUTME: Slices a full set into one page plus pagination metadata

package tweets

import "tweets-app-api/core/domain"

const (
	// DefaultPage is used when no page is specified
	DefaultPage = 1

	// DefaultPerPage is used when no page size is specified
	DefaultPerPage = 10
)

// Paginate returns the requested page of items plus pagination metadata.
// It never fails: non-positive page or perPage fall back to the defaults,
// and an out-of-range page yields an empty items slice.
func Paginate(items []domain.Tweet, page, perPage int) domain.PageResult {
	// Handle invalid page
	if page < 1 {
		page = DefaultPage
	}

	// Handle invalid perPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total := len(items)

	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	// Calculate start and end indices
	start := (page - 1) * perPage
	end := start + perPage

	pageItems := []domain.Tweet{}
	if start < total {
		if end > total {
			end = total
		}
		pageItems = items[start:end]
	}

	return domain.PageResult{
		Items:      pageItems,
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}
