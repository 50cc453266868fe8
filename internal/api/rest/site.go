package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/bearylogical/folio/internal/app"
	"github.com/bearylogical/folio/internal/cache"
	"github.com/bearylogical/folio/internal/content"
	"github.com/bearylogical/folio/internal/entity"
	"github.com/bearylogical/folio/internal/feed"
	"github.com/bearylogical/folio/internal/render"
)

const (
	contentTypeHTML = "text/html"
	contentTypeRSS  = "application/rss+xml"
	contentTypeAtom = "application/atom+xml"
)

var errNotFound = errors.New("not found")

// ContentSource provides the current content snapshot
type ContentSource interface {
	Snapshot() *content.Snapshot
}

// SiteHandler handles the public pages and syndication feeds
type SiteHandler struct {
	site       *entity.Config
	cache      cache.Cache
	source     ContentSource
	renderer   *render.Renderer
	formatDate render.DateFormatter
	logger     *slog.Logger
}

// NewSiteHandler creates a new SiteHandler and sets up routes
func NewSiteHandler(mux *http.ServeMux, site *entity.Config, c cache.Cache, source ContentSource, renderer *render.Renderer) *SiteHandler {
	handler := &SiteHandler{
		site:       site,
		cache:      c,
		source:     source,
		renderer:   renderer,
		formatDate: render.DefaultDateFormatter,
		logger:     app.Logger(),
	}

	mux.HandleFunc("GET /{$}", handler.GetHome)
	mux.HandleFunc("GET /blog", handler.GetListing)
	mux.HandleFunc("GET /blog/page/{page}", handler.GetListing)
	mux.HandleFunc("GET /blog/{slug}", handler.GetPost)
	mux.HandleFunc("GET /tags/{tag}", handler.GetTag)
	mux.HandleFunc("GET /projects", handler.GetProjects)
	mux.HandleFunc("GET /about", handler.GetAbout)
	mux.HandleFunc("GET /feed.xml", handler.GetFeed(entity.FormatRSS))
	mux.HandleFunc("GET /atom.xml", handler.GetFeed(entity.FormatAtom))

	return handler
}

// GetHome renders the hero section and the most recent posts
func (h *SiteHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, contentTypeHTML, func(snapshot *content.Snapshot) ([]byte, error) {
		selected := feed.Select(feed.Published(snapshot.Posts), h.site.MaxDisplay)

		var author *entity.Author

		if found, ok := feed.FindAuthor(snapshot.Authors, h.site.Author); ok {
			author = &found
		} else {
			h.logger.Debug("Author not found, omitting profile", "author", h.site.Author)
		}

		page, err := render.BuildHome(h.site, selected, author, h.formatDate)

		if err != nil {
			return nil, err
		}

		return h.execute(func(buf *bytes.Buffer) error { return h.renderer.Home(buf, page) })
	})
}

// GetListing renders one page of all published posts
func (h *SiteHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	pageNum, err := entity.NewPageParamFromRequest(r)

	if err != nil {
		h.handleError(w, err, http.StatusBadRequest)
		return
	}

	h.serveCached(w, r, contentTypeHTML, func(snapshot *content.Snapshot) ([]byte, error) {
		posts := feed.Sorted(feed.Published(snapshot.Posts))
		page, err := feed.Paginate(posts, pageNum, h.site.PostsPerPage)

		if err != nil {
			return nil, err
		}

		list, err := render.BuildList(h.site, "All Posts", page, render.ListingPageURL, h.formatDate)

		if err != nil {
			return nil, err
		}

		return h.execute(func(buf *bytes.Buffer) error { return h.renderer.List(buf, list) })
	})
}

// GetPost renders a single published post
func (h *SiteHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	h.serveCached(w, r, contentTypeHTML, func(snapshot *content.Snapshot) ([]byte, error) {
		post, ok := feed.FindPost(feed.Published(snapshot.Posts), slug)

		if !ok {
			return nil, fmt.Errorf("post %s: %w", slug, errNotFound)
		}

		page, err := render.BuildPost(h.site, post, snapshot.Authors, h.formatDate)

		if err != nil {
			return nil, err
		}

		return h.execute(func(buf *bytes.Buffer) error { return h.renderer.Post(buf, page) })
	})
}

// GetTag renders every published post carrying a tag
func (h *SiteHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	tagSlug := r.PathValue("tag")

	h.serveCached(w, r, contentTypeHTML, func(snapshot *content.Snapshot) ([]byte, error) {
		posts := feed.WithTag(feed.Sorted(feed.Published(snapshot.Posts)), tagSlug)

		if len(posts) == 0 {
			return nil, fmt.Errorf("tag %s: %w", tagSlug, errNotFound)
		}

		// Show the tag the way authors wrote it rather than its slug.
		tag, _ := lo.Find(posts[0].Tags, func(t string) bool { return feed.TagSlug(t) == tagSlug })
		page := feed.Page{Items: posts, Current: 1, Total: 1}

		list, err := render.BuildList(h.site, "Tag: "+tag, page, render.ListingPageURL, h.formatDate)

		if err != nil {
			return nil, err
		}

		return h.execute(func(buf *bytes.Buffer) error { return h.renderer.List(buf, list) })
	})
}

// GetProjects renders the projects list
func (h *SiteHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, contentTypeHTML, func(snapshot *content.Snapshot) ([]byte, error) {
		page := render.BuildProjects(h.site, snapshot.Projects)

		return h.execute(func(buf *bytes.Buffer) error { return h.renderer.Projects(buf, page) })
	})
}

// GetAbout renders the configured author's profile
func (h *SiteHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, contentTypeHTML, func(snapshot *content.Snapshot) ([]byte, error) {
		author, ok := feed.FindAuthor(snapshot.Authors, h.site.Author)

		if !ok {
			return nil, fmt.Errorf("author %q: %w", h.site.Author, errNotFound)
		}

		page := render.BuildAbout(h.site, author)

		return h.execute(func(buf *bytes.Buffer) error { return h.renderer.About(buf, page) })
	})
}

// GetFeed serves all published posts as RSS or Atom
func (h *SiteHandler) GetFeed(format string) http.HandlerFunc {
	contentType := contentTypeRSS

	if format == entity.FormatAtom {
		contentType = contentTypeAtom
	}

	return func(w http.ResponseWriter, r *http.Request) {
		h.serveCached(w, r, contentType, func(snapshot *content.Snapshot) ([]byte, error) {
			var author *entity.Author

			if found, ok := feed.FindAuthor(snapshot.Authors, h.site.Author); ok {
				author = &found
			}

			return feed.Generate(h.site, author, feed.Sorted(feed.Published(snapshot.Posts)), format)
		})
	}
}

// execute runs a template into a buffer so a failed render never sends a
// partial page
func (h *SiteHandler) execute(exec func(buf *bytes.Buffer) error) ([]byte, error) {
	var buf bytes.Buffer

	if err := exec(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// serveCached serves a response from the cache, or builds it from the
// current snapshot and caches it. Keys include the content revision so a
// reload never serves pages of the previous content.
func (h *SiteHandler) serveCached(w http.ResponseWriter, r *http.Request, contentType string, build func(*content.Snapshot) ([]byte, error)) {
	snapshot := h.source.Snapshot()
	cacheKey := h.buildCacheKey(snapshot, r)

	if h.site.CacheTTL > 0 {
		cachedContent, cacheErr := h.cache.Get(r.Context(), cacheKey)

		if cacheErr == nil {
			w.Header().Set("X-CACHE-STATUS", "HIT")
			h.serveContent(w, cachedContent, contentType)
			return
		} else if !errors.Is(cacheErr, cache.ErrCacheMiss) {
			h.logger.Error("Cache error", "error", cacheErr)
		}
	}

	body, err := build(snapshot)

	if err != nil {
		h.handleError(w, err, statusFor(err))
		return
	}

	if h.site.CacheTTL > 0 {
		// Use background context for caching to avoid cancellation
		cacheCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.cache.Set(cacheCtx, cacheKey, body, h.site.CacheTTL); err != nil {
			h.logger.Error("Failed to cache content", "error", err)
		}
	}

	w.Header().Set("X-CACHE-STATUS", "MISS")
	h.serveContent(w, body, contentType)
}

// buildCacheKey generates a cache key based on content revision and path
func (h *SiteHandler) buildCacheKey(snapshot *content.Snapshot, r *http.Request) string {
	return fmt.Sprintf("page:%s:%s", snapshot.Revision, r.URL.Path)
}

// serveContent sends the content to the client with appropriate headers
func (h *SiteHandler) serveContent(w http.ResponseWriter, body []byte, contentType string) {
	w.Header().Set("Content-Type", contentType+"; charset=utf-8")

	if h.site.CacheTTL > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.site.CacheTTL.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}

	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		handleBadResponse(err, len(body))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errNotFound), errors.Is(err, feed.ErrPageOutOfRange):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleError responds with an error message
func (h *SiteHandler) handleError(w http.ResponseWriter, err error, statusCode int) {
	if statusCode >= http.StatusInternalServerError {
		h.logger.Error("Request error", "error", err, "status", statusCode)
	} else {
		h.logger.Info("Request rejected", "error", err, "status", statusCode)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := map[string]string{"error": err.Error()}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		handleBadResponse(err, response)
	}
}

func handleBadResponse(err error, resp any) {
	app.Logger().Error(
		"failed to write a response",
		"error", err,
		"response", resp,
	)
}
