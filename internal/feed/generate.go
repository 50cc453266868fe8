package feed

import (
	"fmt"
	"strings"

	"github.com/gorilla/feeds"

	"github.com/bearylogical/folio/internal/entity"
)

// Generate builds a syndication feed for posts, which are expected to be
// published and already ordered, and returns it as a byte array.
func Generate(site *entity.Config, author *entity.Author, posts []entity.Post, format string) ([]byte, error) {
	base := strings.TrimSuffix(site.SiteURL, "/")

	feed := &feeds.Feed{
		Title:       site.Title,
		Link:        &feeds.Link{Href: base + "/"},
		Description: site.Description,
		Id:          base + "/",
	}

	if author != nil {
		feed.Author = &feeds.Author{Name: author.Name, Email: author.Email}
	}

	for _, p := range posts {
		link := base + "/blog/" + p.Slug

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Summary,
			Created:     p.Date,
		})

		if feed.Created.IsZero() || p.Date.After(feed.Created) {
			feed.Created = p.Date
		}
	}

	feed.Updated = feed.Created

	var content string
	var err error

	switch format {
	case entity.FormatRSS:
		content, err = feed.ToRss()
	case entity.FormatAtom:
		content, err = feed.ToAtom()
	default:
		return nil, fmt.Errorf("unsupported feed format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("could not marshal %d posts to %s: %w", len(posts), format, err)
	}

	return []byte(content), nil
}
