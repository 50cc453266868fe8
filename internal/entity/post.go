package entity

import (
	"html/template"
	"time"
)

type Post struct {
	// Unique across the collection, used to build /blog/{slug}.
	Slug string
	// Publication date parsed from RawDate.
	Date time.Time
	// Date exactly as supplied by the content source.
	RawDate string
	Title   string
	Summary string
	// Display order, duplicates allowed.
	Tags    []string
	Authors []string
	Draft   bool
	// Pre-rendered by the content source, trusted as-is.
	Body template.HTML
}

type Author struct {
	Name string `yaml:"name"`
	// Optional image locator.
	Avatar     string `yaml:"avatar"`
	Occupation string `yaml:"occupation"`
	Company    string `yaml:"company"`
	Email      string `yaml:"email"`
}

type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Href        string `yaml:"href"`
	ImgSrc      string `yaml:"imgSrc"`
}
