// Package content loads the posts, authors and projects maintained outside
// this program. Records arrive already structured; nothing is compiled here.
package content

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/bearylogical/folio/internal/entity"
)

var ErrDuplicateSlug = errors.New("duplicate post slug")

// Snapshot is one consistent view of the content file.
type Snapshot struct {
	Posts    []entity.Post
	Authors  []entity.Author
	Projects []entity.Project
	// Changes whenever the file contents change.
	Revision string
}

type document struct {
	Posts    []postRecord     `yaml:"posts"`
	Authors  []entity.Author  `yaml:"authors"`
	Projects []entity.Project `yaml:"projects"`
}

type postRecord struct {
	Slug    string   `yaml:"slug"`
	Date    string   `yaml:"date"`
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Authors []string `yaml:"authors"`
	Draft   bool     `yaml:"draft"`
	Body    string   `yaml:"body"`
}

// Load reads and parses the content file at path.
func Load(path string) (*Snapshot, error) {
	contents, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("could not read content file: %w", err)
	}

	snapshot, err := Parse(contents)

	if err != nil {
		return nil, fmt.Errorf("could not parse content file %s: %w", path, err)
	}

	return snapshot, nil
}

// Parse decodes a YAML content document. Every post needs a unique slug and
// a parseable date. Dates without a zone are read as UTC.
func Parse(contents []byte) (*Snapshot, error) {
	var doc document

	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Posts:    make([]entity.Post, 0, len(doc.Posts)),
		Authors:  doc.Authors,
		Projects: doc.Projects,
		Revision: fmt.Sprintf("%016x", xxhash.Sum64(contents)),
	}

	seen := make(map[string]bool, len(doc.Posts))

	for i, rec := range doc.Posts {
		post, err := rec.toPost()

		if err != nil {
			return nil, fmt.Errorf("post #%d: %w", i+1, err)
		}

		if seen[post.Slug] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, post.Slug)
		}

		seen[post.Slug] = true
		snapshot.Posts = append(snapshot.Posts, post)
	}

	return snapshot, nil
}

func (r postRecord) toPost() (entity.Post, error) {
	slug := strings.TrimSpace(r.Slug)

	if slug == "" {
		return entity.Post{}, fmt.Errorf("slug is required")
	}

	date, err := dateparse.ParseIn(r.Date, time.UTC)

	if err != nil {
		return entity.Post{}, fmt.Errorf("could not parse date %q of %s: %w", r.Date, slug, err)
	}

	return entity.Post{
		Slug:    slug,
		Date:    date,
		RawDate: r.Date,
		Title:   r.Title,
		Summary: r.Summary,
		Tags:    r.Tags,
		Authors: r.Authors,
		Draft:   r.Draft,
		// nolint: gosec
		Body: template.HTML(r.Body),
	}, nil
}
