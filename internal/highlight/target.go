package highlight

import (
	"strings"

	"github.com/samber/lo"
)

// MarkerClass is always the first class of a highlight.
const MarkerClass = "hand-highlight"

type Kind int

const (
	// None renders plain inline content.
	None Kind = iota
	// Internal is a path inside the site, navigated in place.
	Internal
	// External opens in a new browsing context with no referrer or opener.
	External
)

func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return "none"
	}
}

// Target is where a highlight links to.
type Target struct {
	Kind Kind
	URL  string
}

// Classify decides the link kind once from the raw url.
func Classify(url string) Target {
	switch {
	case url == "":
		return Target{Kind: None}
	case strings.HasPrefix(url, "/"):
		return Target{Kind: Internal, URL: url}
	default:
		return Target{Kind: External, URL: url}
	}
}

// ClassNames joins the marker class with the given fragments, dropping empty
// ones and collapsing whitespace.
func ClassNames(fragments ...string) string {
	tokens := lo.FlatMap(append([]string{MarkerClass}, fragments...), func(fragment string, _ int) []string {
		return strings.Fields(fragment)
	})

	return strings.Join(tokens, " ")
}
