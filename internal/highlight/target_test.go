package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bearylogical/folio/internal/highlight"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		url      string
		expected highlight.Target
	}{
		{url: "", expected: highlight.Target{Kind: highlight.None}},
		{url: "/about", expected: highlight.Target{Kind: highlight.Internal, URL: "/about"}},
		{url: "/", expected: highlight.Target{Kind: highlight.Internal, URL: "/"}},
		{url: "https://example.com", expected: highlight.Target{Kind: highlight.External, URL: "https://example.com"}},
		{url: "gahmen.bearylogical.net", expected: highlight.Target{Kind: highlight.External, URL: "gahmen.bearylogical.net"}},
		{url: "#content", expected: highlight.Target{Kind: highlight.External, URL: "#content"}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, highlight.Classify(tt.url))
		})
	}
}

func TestClassNames(t *testing.T) {
	assert.Equal(t, "hand-highlight", highlight.ClassNames())
	assert.Equal(t, "hand-highlight", highlight.ClassNames("", "  "))
	assert.Equal(t, "hand-highlight font-semibold", highlight.ClassNames("font-semibold"))
	assert.Equal(t, "hand-highlight a b c", highlight.ClassNames(" a ", "", "b\tc"))
}
