package trivia

import "strconv"

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 10

// Paginate returns the 1-based page of items. Pages past the end are empty, never an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return []T{}
	}
	// compare in page units so huge page numbers cannot overflow start
	pages := (len(items) + pageSize - 1) / pageSize
	if page > pages {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end:end]
}

// ParsePage reads a page query value; absent, non-numeric or non-positive input means page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
