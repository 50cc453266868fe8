package feed

import (
	"slices"

	"github.com/samber/lo"

	"github.com/bearylogical/folio/internal/entity"
)

// Selected is the bounded, ordered subset of posts shown in the recent list.
type Selected struct {
	Items   []entity.Post
	HasMore bool
}

// Select orders posts by date, most recent first, and keeps the first limit
// of them. Posts sharing a date keep their input order. The input slice is
// never modified.
func Select(posts []entity.Post, limit int) Selected {
	limit = max(limit, 0)
	sorted := Sorted(posts)

	return Selected{
		Items:   sorted[:min(len(sorted), limit)],
		HasMore: len(sorted) > limit,
	}
}

// Sorted returns a copy of posts in stable descending date order.
func Sorted(posts []entity.Post) []entity.Post {
	sorted := slices.Clone(posts)

	if sorted == nil {
		sorted = []entity.Post{}
	}

	slices.SortStableFunc(sorted, func(a, b entity.Post) int {
		return b.Date.Compare(a.Date)
	})

	return sorted
}

// FindAuthor returns the author whose name equals name exactly.
func FindAuthor(authors []entity.Author, name string) (entity.Author, bool) {
	return lo.Find(authors, func(a entity.Author) bool {
		return a.Name == name
	})
}
