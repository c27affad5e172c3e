package trivia

import (
	"fmt"
	"sort"
)

// FilterByCategory scopes questions to categoryID. The category must exist in categories
// even when no question references it; an empty result for a known category is a success.
func FilterByCategory(questions []Question, categories []Category, categoryID int) ([]Question, error) {
	if _, ok := findCategory(categories, categoryID); !ok {
		return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	scoped := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Category == categoryID {
			scoped = append(scoped, q)
		}
	}
	sort.SliceStable(scoped, func(i, j int) bool { return scoped[i].ID < scoped[j].ID })
	return scoped, nil
}

// DropOrphans removes questions whose category does not resolve.
func DropOrphans(questions []Question, categories []Category) []Question {
	known := make(map[int]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}
	kept := make([]Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := known[q.Category]; ok {
			kept = append(kept, q)
		}
	}
	return kept
}

func findCategory(categories []Category, id int) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
