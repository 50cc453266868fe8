package entity

import "time"

const (
	MaxDisplayDefault   = 5
	PostsPerPageDefault = 10
	LocaleDefault       = "en-US"
	CacheTTLDefault     = 10 * time.Minute
)

// Config is the site configuration. Every value the selection and rendering
// code depends on is passed from here explicitly.
type Config struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	// Absolute base URL used in syndication feeds.
	SiteURL string `mapstructure:"siteUrl"`
	Locale  string `mapstructure:"locale"`
	// Name of the author shown in the profile block.
	Author string `mapstructure:"author"`

	// MaxDisplay bounds the recent posts list on the home page.
	MaxDisplay   int `mapstructure:"maxDisplay"`
	PostsPerPage int `mapstructure:"postsPerPage"`

	ContentPath string        `mapstructure:"contentPath"`
	CacheTTL    time.Duration `mapstructure:"cacheTTL"`

	Hero   Hero   `mapstructure:"hero"`
	Server Server `mapstructure:"server"`
}

type Hero struct {
	Greeting  string     `mapstructure:"greeting"`
	Interests []Interest `mapstructure:"interests"`
}

// Interest is a highlighted phrase in the hero section, optionally linked.
type Interest struct {
	Text string `mapstructure:"text"`
	URL  string `mapstructure:"url"`
}

type Server struct {
	Port string `mapstructure:"port"`
	// Empty means the in-process cache is used.
	RedisAddr string `mapstructure:"redisAddr"`
}
