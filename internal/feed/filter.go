package feed

import (
	"github.com/gosimple/slug"
	"github.com/samber/lo"

	"github.com/bearylogical/folio/internal/entity"
)

// Published drops drafts and keeps the remaining order.
func Published(posts []entity.Post) []entity.Post {
	return lo.Reject(posts, func(p entity.Post, _ int) bool {
		return p.Draft
	})
}

// TagSlug is the URL form of a tag.
func TagSlug(tag string) string {
	return slug.Make(tag)
}

// WithTag keeps the posts carrying a tag whose slug is tagSlug.
func WithTag(posts []entity.Post, tagSlug string) []entity.Post {
	return lo.Filter(posts, func(p entity.Post, _ int) bool {
		return lo.ContainsBy(p.Tags, func(tag string) bool {
			return TagSlug(tag) == tagSlug
		})
	})
}

// FindPost looks a post up by slug.
func FindPost(posts []entity.Post, postSlug string) (entity.Post, bool) {
	return lo.Find(posts, func(p entity.Post) bool {
		return p.Slug == postSlug
	})
}
