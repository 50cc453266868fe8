package content_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearylogical/folio/internal/content"
)

const sampleContent = `
authors:
  - name: syamil maulod
    avatar: /static/images/avatar.png
    occupation: Engineer
projects:
  - title: "Postal SG : Visualizing Singapore Postal Code System"
    description: What does 120k postal codes in Singapore look like?
    href: https://stories.bearylogical.net/postal-sg
    imgSrc: /static/images/projects/postal-sg.png
posts:
  - slug: hello-world
    date: "2024-01-15"
    title: Hello World
    summary: The first post.
    tags: [go, data, go]
  - slug: later
    date: "2024-02-01T08:30:00Z"
    title: Later
    summary: Another post.
    draft: true
    body: "<p>Body</p>"
`

func TestParse(t *testing.T) {
	snapshot, err := content.Parse([]byte(sampleContent))
	require.NoError(t, err)

	require.Len(t, snapshot.Posts, 2)

	first := snapshot.Posts[0]
	assert.Equal(t, "hello-world", first.Slug)
	assert.Equal(t, "2024-01-15", first.RawDate)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, []string{"go", "data", "go"}, first.Tags)
	assert.False(t, first.Draft)

	second := snapshot.Posts[1]
	assert.True(t, second.Draft)
	assert.Equal(t, time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC), second.Date.UTC())
	assert.Equal(t, "<p>Body</p>", string(second.Body))

	require.Len(t, snapshot.Authors, 1)
	assert.Equal(t, "syamil maulod", snapshot.Authors[0].Name)
	assert.Equal(t, "/static/images/avatar.png", snapshot.Authors[0].Avatar)

	require.Len(t, snapshot.Projects, 1)
	assert.Equal(t, "/static/images/projects/postal-sg.png", snapshot.Projects[0].ImgSrc)

	assert.Len(t, snapshot.Revision, 16)
}

func TestParse_DatesIgnoreLocalZone(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("UTC+8", 8*60*60)
	defer func() { time.Local = local }()

	snapshot, err := content.Parse([]byte(sampleContent))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), snapshot.Posts[0].Date)
	assert.Equal(t, time.UTC, snapshot.Posts[0].Date.Location())
	assert.Equal(t, time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC), snapshot.Posts[1].Date.UTC())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name        string
		contents    string
		expectedErr error
		errContains string
	}{
		{
			name: "Duplicate slug",
			contents: `posts:
  - {slug: a, date: "2024-01-01"}
  - {slug: a, date: "2024-01-02"}`,
			expectedErr: content.ErrDuplicateSlug,
		},
		{
			name:        "Missing slug",
			contents:    `posts: [{date: "2024-01-01"}]`,
			errContains: "slug is required",
		},
		{
			name:        "Unparseable date",
			contents:    `posts: [{slug: a, date: "someday"}]`,
			errContains: `could not parse date "someday" of a`,
		},
		{
			name:        "Invalid YAML",
			contents:    "posts: [",
			errContains: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.Parse([]byte(tt.contents))
			require.Error(t, err)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}

			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	snapshot, err := content.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Posts)
	assert.Empty(t, snapshot.Authors)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := content.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "could not read content file")
}

func TestParse_RevisionFollowsContents(t *testing.T) {
	a, err := content.Parse([]byte(sampleContent))
	require.NoError(t, err)

	b, err := content.Parse([]byte(sampleContent))
	require.NoError(t, err)

	c, err := content.Parse([]byte(sampleContent + "\n# edited\n"))
	require.NoError(t, err)

	assert.Equal(t, a.Revision, b.Revision)
	assert.NotEqual(t, a.Revision, c.Revision)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
