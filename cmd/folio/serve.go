package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bearylogical/folio/internal/api/rest"
	"github.com/bearylogical/folio/internal/app"
	"github.com/bearylogical/folio/internal/cache"
	"github.com/bearylogical/folio/internal/entity"
	"github.com/bearylogical/folio/internal/render"
)

const memoryCacheSize = 512

func newServeCmd(root *rootOptions) *cobra.Command {
	var port, redisAddr string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Long: `serve loads the content file and serves the site. Rendered pages are
cached in Redis when an address is configured and in memory otherwise. With
--watch the content file is reloaded whenever it changes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, store, err := root.load()

			if err != nil {
				return err
			}

			if cmd.Flags().Changed("port") {
				site.Server.Port = port
			}

			if cmd.Flags().Changed("redis") {
				site.Server.RedisAddr = redisAddr
			}

			ctx := cmd.Context()

			pageCache, err := newCache(ctx, site)

			if err != nil {
				return err
			}

			defer pageCache.Close()

			renderer, err := render.New()

			if err != nil {
				return err
			}

			server := rest.NewServer(site, pageCache, store, renderer)

			g, ctx := errgroup.WithContext(ctx)

			if watch {
				g.Go(func() error {
					if err := store.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
						return fmt.Errorf("content watcher: %w", err)
					}
					return nil
				})
			}

			g.Go(func() error {
				return server.Run(ctx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides server.port)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address host:port (overrides server.redisAddr)")
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the content file when it changes")

	return cmd
}

func newCache(ctx context.Context, site *entity.Config) (cache.Cache, error) {
	logger := app.Logger()

	if site.Server.RedisAddr == "" {
		logger.Info("Using in-memory page cache", "size", memoryCacheSize)
		return cache.NewMemoryCache(memoryCacheSize), nil
	}

	redisClient, err := cache.NewRedisClient(ctx, site.Server.RedisAddr)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Using Redis page cache", "addr", site.Server.RedisAddr)

	return redisClient, nil
}
