package repository

import "sort"

// Sort selects an entity field to order by. An empty or unrecognized
// field name leaves the list unsorted; this is not an error.
type Sort struct {
	By   string
	Desc bool
}

// Page applies offset then limit. Limit 0 means unbounded.
type Page struct {
	Limit  int
	Offset int
}

func applySort[T any](items []T, less func(a, b T) bool, desc bool) {
	if less == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func applyPage[T any](items []T, page Page) []T {
	if page.Offset > 0 {
		if page.Offset >= len(items) {
			return []T{}
		}
		items = items[page.Offset:]
	}
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}
