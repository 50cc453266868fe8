package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bearylogical/folio/internal/config"
	"github.com/bearylogical/folio/internal/content"
	"github.com/bearylogical/folio/internal/entity"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Personal site server",
		Long: `folio serves a personal site: a hero section, the most recent posts,
a paginated blog listing, tag pages, projects and RSS/Atom feeds, all
rendered from a structured content file.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "site.yaml", "site config file (yaml, json or toml)")

	cmd.AddCommand(newServeCmd(opts), newRenderCmd(opts))

	return cmd
}

// load reads the site config and its content file. A relative contentPath
// is resolved against the directory of the config file.
func (o *rootOptions) load(storeOpts ...content.StoreOption) (*entity.Config, *content.Store, error) {
	site, err := config.Read(o.configPath)

	if err != nil {
		return nil, nil, err
	}

	if !filepath.IsAbs(site.ContentPath) {
		site.ContentPath = filepath.Join(filepath.Dir(o.configPath), site.ContentPath)
	}

	store, err := content.NewStore(site.ContentPath, storeOpts...)

	if err != nil {
		return nil, nil, err
	}

	return site, store, nil
}
