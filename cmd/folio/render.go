package main

import (
	"github.com/spf13/cobra"

	"github.com/bearylogical/folio/internal/entity"
	"github.com/bearylogical/folio/internal/feed"
	"github.com/bearylogical/folio/internal/render"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the home page to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, store, err := root.load()

			if err != nil {
				return err
			}

			snapshot := store.Snapshot()
			selected := feed.Select(feed.Published(snapshot.Posts), site.MaxDisplay)

			var author *entity.Author

			if found, ok := feed.FindAuthor(snapshot.Authors, site.Author); ok {
				author = &found
			}

			page, err := render.BuildHome(site, selected, author, render.DefaultDateFormatter)

			if err != nil {
				return err
			}

			renderer, err := render.New()

			if err != nil {
				return err
			}

			return renderer.Home(cmd.OutOrStdout(), page)
		},
	}
}
