package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/bearylogical/folio/internal/datefmt"
	"github.com/bearylogical/folio/internal/entity"
	"github.com/bearylogical/folio/internal/feed"
	"github.com/bearylogical/folio/internal/highlight"
)

const (
	EmptyMessage  = "No posts found."
	interestsLead = "I am generally curious and especially interested in "
)

// DateFormatter turns a publication date into display text for a locale.
type DateFormatter func(t time.Time, locale string) (string, error)

// DefaultDateFormatter formats long dates, e.g. "January 15, 2024".
var DefaultDateFormatter DateFormatter = datefmt.Format

type TagLink struct {
	Text string
	URL  string
}

// Row is one post in a listing.
type Row struct {
	Slug          string
	Title         string
	URL           string
	Date          string
	DateTime      string
	Summary       string
	Tags          []TagLink
	ReadMoreLabel string
}

type Profile struct {
	Name       string
	Avatar     string
	Occupation string
	Company    string
	Email      string
}

type Hero struct {
	Greeting  string
	Interests template.HTML
}

type HomePage struct {
	Site         *entity.Config
	Hero         Hero
	Profile      *Profile
	Rows         []Row
	ShowAllPosts bool
	AllPostsURL  string
}

type ListPage struct {
	Site    *entity.Config
	Heading string
	Rows    []Row
	Page    feed.Page
	PrevURL string
	NextURL string
}

type PostPage struct {
	Site    *entity.Config
	Row     Row
	Body    template.HTML
	Authors []Profile
}

type ProjectCard struct {
	Title       string
	Description string
	ImgSrc      string
	Href        string
	External    bool
}

type ProjectsPage struct {
	Site     *entity.Config
	Projects []ProjectCard
}

type AboutPage struct {
	Site    *entity.Config
	Profile Profile
}

// BuildRow maps a post to its display row. Tags are kept as given, duplicates
// included; the summary is used verbatim.
func BuildRow(post entity.Post, locale string, format DateFormatter) (Row, error) {
	date, err := format(post.Date, locale)

	if err != nil {
		return Row{}, fmt.Errorf("could not format date of %s: %w", post.Slug, err)
	}

	dateTime := post.RawDate

	if dateTime == "" {
		dateTime = post.Date.Format(time.RFC3339)
	}

	tags := make([]TagLink, 0, len(post.Tags))

	for _, tag := range post.Tags {
		tags = append(tags, TagLink{Text: tag, URL: TagURL(tag)})
	}

	return Row{
		Slug:          post.Slug,
		Title:         post.Title,
		URL:           PostURL(post.Slug),
		Date:          date,
		DateTime:      dateTime,
		Summary:       post.Summary,
		Tags:          tags,
		ReadMoreLabel: `Read more: "` + post.Title + `"`,
	}, nil
}

func BuildRows(posts []entity.Post, locale string, format DateFormatter) ([]Row, error) {
	rows := make([]Row, 0, len(posts))

	for _, p := range posts {
		row, err := BuildRow(p, locale, format)

		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// BuildHome assembles the home page. A nil author omits the profile block;
// the All Posts link is present only when more posts exist than are shown.
func BuildHome(site *entity.Config, selected feed.Selected, author *entity.Author, format DateFormatter) (HomePage, error) {
	rows, err := BuildRows(selected.Items, site.Locale, format)

	if err != nil {
		return HomePage{}, err
	}

	interests, err := buildInterests(site.Hero.Interests)

	if err != nil {
		return HomePage{}, err
	}

	page := HomePage{
		Site:         site,
		Hero:         Hero{Greeting: site.Hero.Greeting, Interests: interests},
		Rows:         rows,
		ShowAllPosts: selected.HasMore,
		AllPostsURL:  ListingURL,
	}

	if author != nil {
		profile := buildProfile(*author)
		page.Profile = &profile
	}

	return page, nil
}

// BuildList assembles a page of a listing. pageURL maps a page number to
// its URL for the previous and next links.
func BuildList(site *entity.Config, heading string, page feed.Page, pageURL func(int) string, format DateFormatter) (ListPage, error) {
	rows, err := BuildRows(page.Items, site.Locale, format)

	if err != nil {
		return ListPage{}, err
	}

	list := ListPage{
		Site:    site,
		Heading: heading,
		Rows:    rows,
		Page:    page,
	}

	if page.HasPrev() {
		list.PrevURL = pageURL(page.Current - 1)
	}

	if page.HasNext() {
		list.NextURL = pageURL(page.Current + 1)
	}

	return list, nil
}

func BuildPost(site *entity.Config, post entity.Post, authors []entity.Author, format DateFormatter) (PostPage, error) {
	row, err := BuildRow(post, site.Locale, format)

	if err != nil {
		return PostPage{}, err
	}

	page := PostPage{Site: site, Row: row, Body: post.Body}

	for _, name := range post.Authors {
		if author, ok := feed.FindAuthor(authors, name); ok {
			page.Authors = append(page.Authors, buildProfile(author))
		}
	}

	return page, nil
}

func BuildProjects(site *entity.Config, projects []entity.Project) ProjectsPage {
	cards := make([]ProjectCard, 0, len(projects))

	for _, p := range projects {
		target := highlight.Classify(p.Href)

		cards = append(cards, ProjectCard{
			Title:       p.Title,
			Description: p.Description,
			ImgSrc:      p.ImgSrc,
			Href:        target.URL,
			External:    target.Kind == highlight.External,
		})
	}

	return ProjectsPage{Site: site, Projects: cards}
}

func BuildAbout(site *entity.Config, author entity.Author) AboutPage {
	return AboutPage{Site: site, Profile: buildProfile(author)}
}

func buildProfile(author entity.Author) Profile {
	return Profile{
		Name:       author.Name,
		Avatar:     author.Avatar,
		Occupation: author.Occupation,
		Company:    author.Company,
		Email:      author.Email,
	}
}

// buildInterests renders each interest as a highlight and joins them as
// "a, b, and c".
func buildInterests(interests []entity.Interest) (template.HTML, error) {
	if len(interests) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(interests))

	for _, interest := range interests {
		w := highlight.New(
			template.HTML(template.HTMLEscapeString(interest.Text)),
			highlight.WithURL(interest.URL),
			highlight.WithClass("font-semibold"),
		)

		html, err := w.Render()

		if err != nil {
			return "", err
		}

		parts = append(parts, string(html))
	}

	var joined string

	switch len(parts) {
	case 1:
		joined = parts[0]
	case 2:
		joined = parts[0] + " and " + parts[1]
	default:
		joined = strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}

	// nolint: gosec
	return template.HTML(template.HTMLEscapeString(interestsLead) + joined), nil
}
