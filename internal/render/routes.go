package render

import (
	"strconv"

	"github.com/bearylogical/folio/internal/feed"
)

const (
	HomeURL     = "/"
	ListingURL  = "/blog"
	ProjectsURL = "/projects"
	AboutURL    = "/about"
)

func PostURL(slug string) string {
	return ListingURL + "/" + slug
}

func TagURL(tag string) string {
	return "/tags/" + feed.TagSlug(tag)
}

// ListingPageURL is the canonical URL of a page of the full listing.
func ListingPageURL(page int) string {
	if page <= 1 {
		return ListingURL
	}

	return ListingURL + "/page/" + strconv.Itoa(page)
}
