package utils

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// GetPageParams reads the page and pageSize query parameters, defaulting to
// 1 and 10. Parsed values are passed through unvalidated; PageSlice tolerates
// any integer.
func GetPageParams(r *http.Request) (int, int) {
	page := DefaultPage
	if val, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page = val
	}

	pageSize := DefaultPageSize
	if val, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil {
		pageSize = val
	}

	return page, pageSize
}

// PageSlice returns the [start, start+pageSize) window of list, where
// start = (page-1)*pageSize. Any out-of-range window yields an empty slice,
// never an error.
func PageSlice[T any](list []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start < 0 || start >= len(list) || pageSize <= 0 {
		return []T{}
	}

	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
