package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/bearylogical/folio/internal/highlight"
)

//go:embed templates
var templateFS embed.FS

const (
	homeTemplate     = "home.html"
	listTemplate     = "list.html"
	postTemplate     = "post.html"
	projectsTemplate = "projects.html"
	aboutTemplate    = "about.html"
)

// Renderer executes the page layouts. Every page is parsed together with
// the base layout and partials so that each can define its own content block.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"emptyMessage": func() string { return EmptyMessage },
	// Highlights are served unmounted; the page script mounts them.
	"animateDelayMillis": func() int64 { return highlight.AnimateDelay.Milliseconds() },
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{homeTemplate, listTemplate, postTemplate, projectsTemplate, aboutTemplate} {
		tpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/base.html",
			"templates/partials/*.html",
			"templates/"+name,
		)

		if err != nil {
			return nil, fmt.Errorf("could not parse layout %s: %w", name, err)
		}

		r.pages[name] = tpl
	}

	return r, nil
}

func (r *Renderer) Home(w io.Writer, page HomePage) error {
	return r.execute(w, homeTemplate, page)
}

func (r *Renderer) List(w io.Writer, page ListPage) error {
	return r.execute(w, listTemplate, page)
}

func (r *Renderer) Post(w io.Writer, page PostPage) error {
	return r.execute(w, postTemplate, page)
}

func (r *Renderer) Projects(w io.Writer, page ProjectsPage) error {
	return r.execute(w, projectsTemplate, page)
}

func (r *Renderer) About(w io.Writer, page AboutPage) error {
	return r.execute(w, aboutTemplate, page)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.pages[name].ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("could not execute layout %s: %w", name, err)
	}

	return nil
}
