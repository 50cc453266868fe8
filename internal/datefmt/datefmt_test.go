package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearylogical/folio/internal/datefmt"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		locale   string
		expected string
	}{
		{name: "US English", locale: "en-US", expected: "March 5, 2024"},
		{name: "English without region", locale: "en", expected: "March 5, 2024"},
		{name: "British English", locale: "en-GB", expected: "5 March 2024"},
		{name: "Australian English", locale: "en-AU", expected: "5 March 2024"},
		{name: "Indian English", locale: "en-IN", expected: "5 March 2024"},
		{name: "German", locale: "de-DE", expected: "5. März 2024"},
		{name: "Austrian German", locale: "de-AT", expected: "5. März 2024"},
		{name: "French", locale: "fr-FR", expected: "5 mars 2024"},
		{name: "Belgian French", locale: "fr-BE", expected: "5 mars 2024"},
		{name: "Japanese", locale: "ja-JP", expected: "2024年3月5日"},
		{name: "Japanese without region", locale: "ja", expected: "2024年3月5日"},
		{name: "Unsupported language", locale: "sw-KE", expected: "March 5, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted, err := datefmt.Format(date, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, formatted)
		})
	}
}

func TestFormat_InvalidLocale(t *testing.T) {
	_, err := datefmt.Format(time.Now(), "not a locale!")
	assert.Error(t, err)
}
