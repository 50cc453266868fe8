package feed

import (
	"errors"

	"github.com/bearylogical/folio/internal/entity"
)

// ErrPageOutOfRange is returned when the requested page has no posts.
var ErrPageOutOfRange = errors.New("page out of range")

type Page struct {
	Items   []entity.Post
	Current int
	Total   int
}

func (p Page) HasPrev() bool { return p.Current > 1 }
func (p Page) HasNext() bool { return p.Current < p.Total }

// Paginate cuts posts into pages of perPage and returns the 1-based page.
// An empty collection has a single empty first page.
func Paginate(posts []entity.Post, page, perPage int) (Page, error) {
	if perPage < 1 {
		perPage = entity.PostsPerPageDefault
	}

	total := max((len(posts)+perPage-1)/perPage, 1)

	if page < 1 || page > total {
		return Page{}, ErrPageOutOfRange
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(posts))

	return Page{
		Items:   posts[start:end],
		Current: page,
		Total:   total,
	}, nil
}
