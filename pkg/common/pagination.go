package common

import (
	"errors"
	"math"
	"net/http"
	"strconv"
)

// QuestionsPerPage is the page size used by every paginated question listing
const QuestionsPerPage = 10

// ExtractPage reads the 1-based page number from the ?page= query parameter.
// Absent or non-integer values fall back to the first page. Integers too large
// for int are clamped, so they still address a page past the collection.
func ExtractPage(r *http.Request) int {
	page := r.URL.Query().Get("page")
	if page == "" {
		return 1
	}
	p, err := strconv.Atoi(page)
	if errors.Is(err, strconv.ErrRange) {
		if page[0] == '-' {
			return 0
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return p
}

// Paginate returns the slice of items shown on the given 1-based page.
// Pages before the first or past the end yield an empty, non-nil slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return []T{}
	}

	pages := (len(items) + pageSize - 1) / pageSize
	if page-1 >= pages {
		return []T{}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
