package feed_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearylogical/folio/internal/entity"
	"github.com/bearylogical/folio/internal/feed"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// postsOnDays creates one post per offset, in the given order.
func postsOnDays(days ...int) []entity.Post {
	posts := make([]entity.Post, 0, len(days))

	for i, d := range days {
		posts = append(posts, entity.Post{
			Slug:  fmt.Sprintf("post-%d", i),
			Title: fmt.Sprintf("Post %d", i),
			Date:  epoch.AddDate(0, 0, d),
		})
	}

	return posts
}

func slugs(posts []entity.Post) []string {
	out := make([]string, 0, len(posts))

	for _, p := range posts {
		out = append(out, p.Slug)
	}

	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name          string
		posts         []entity.Post
		limit         int
		expectedSlugs []string
		expectedMore  bool
	}{
		{
			name:          "Empty collection",
			posts:         nil,
			limit:         5,
			expectedSlugs: []string{},
			expectedMore:  false,
		},
		{
			name:          "Fewer posts than the limit",
			posts:         postsOnDays(1, 3, 2),
			limit:         5,
			expectedSlugs: []string{"post-1", "post-2", "post-0"},
			expectedMore:  false,
		},
		{
			name:          "Exactly the limit",
			posts:         postsOnDays(1, 2, 3, 4, 5),
			limit:         5,
			expectedSlugs: []string{"post-4", "post-3", "post-2", "post-1", "post-0"},
			expectedMore:  false,
		},
		{
			name:          "Seven posts keep the five most recent",
			posts:         postsOnDays(10, 70, 30, 50, 20, 60, 40),
			limit:         5,
			expectedSlugs: []string{"post-1", "post-5", "post-3", "post-6", "post-2"},
			expectedMore:  true,
		},
		{
			name:          "Equal dates keep input order",
			posts:         postsOnDays(1, 5, 1, 5, 1),
			limit:         10,
			expectedSlugs: []string{"post-1", "post-3", "post-0", "post-2", "post-4"},
			expectedMore:  false,
		},
		{
			name:          "Zero limit",
			posts:         postsOnDays(1, 2),
			limit:         0,
			expectedSlugs: []string{},
			expectedMore:  true,
		},
		{
			name:          "Negative limit is clamped",
			posts:         postsOnDays(1),
			limit:         -3,
			expectedSlugs: []string{},
			expectedMore:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := feed.Select(tt.posts, tt.limit)

			assert.Equal(t, tt.expectedSlugs, slugs(selected.Items))
			assert.Equal(t, tt.expectedMore, selected.HasMore)
		})
	}
}

func TestSelect_SizeAndHasMoreProperties(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for limit := 1; limit <= 8; limit++ {
			days := make([]int, n)

			for i := range days {
				days[i] = (i * 7) % 5
			}

			selected := feed.Select(postsOnDays(days...), limit)

			assert.Len(t, selected.Items, min(n, limit), "n=%d limit=%d", n, limit)
			assert.Equal(t, n > limit, selected.HasMore, "n=%d limit=%d", n, limit)

			for i := 1; i < len(selected.Items); i++ {
				assert.False(t, selected.Items[i].Date.After(selected.Items[i-1].Date),
					"items must be in descending date order")
			}
		}
	}
}

func TestSelect_IsIdempotentAndDoesNotMutateInput(t *testing.T) {
	posts := postsOnDays(3, 1, 2, 1)
	before := slugs(posts)

	first := feed.Select(posts, 3)
	second := feed.Select(posts, 3)

	assert.Equal(t, first, second)
	assert.Equal(t, before, slugs(posts))
}

func TestFindAuthor(t *testing.T) {
	authors := []entity.Author{
		{Name: "someone else"},
		{Name: "syamil maulod", Avatar: "/static/images/avatar.png"},
	}

	t.Run("Empty collection", func(t *testing.T) {
		_, ok := feed.FindAuthor(nil, "x")
		assert.False(t, ok)
	})

	t.Run("Exact match", func(t *testing.T) {
		author, ok := feed.FindAuthor(authors, "syamil maulod")
		require.True(t, ok)
		assert.Equal(t, "/static/images/avatar.png", author.Avatar)
	})

	t.Run("Different case does not match", func(t *testing.T) {
		_, ok := feed.FindAuthor(authors, "Syamil Maulod")
		assert.False(t, ok)
	})

	t.Run("Partial name does not match", func(t *testing.T) {
		_, ok := feed.FindAuthor(authors, "syamil")
		assert.False(t, ok)
	})
}
