// Package highlight renders inline emphasised text that optionally links
// somewhere, and drives the one-shot animation flag styled by CSS.
package highlight

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// AnimateDelay is how long after mounting the animation flag flips.
const AnimateDelay = 50 * time.Millisecond

var (
	ErrAlreadyMounted = errors.New("highlight already mounted")
	ErrUnmounted      = errors.New("highlight unmounted")
)

var widgetTemplate = template.Must(template.New("highlight").Parse(
	`{{define "span"}}<span class="{{.Class}}" data-animate="{{.Animate}}">{{.Children}}</span>{{end}}` +
		`{{if .Internal}}<a href="{{.URL}}" class="{{.Class}}">{{template "span" .}}</a>` +
		`{{else if .External}}<a href="{{.URL}}" class="{{.Class}}" target="_blank" rel="noopener noreferrer">{{template "span" .}}</a>` +
		`{{else}}{{template "span" .}}{{end}}`,
))

type State struct {
	Mounted bool
	Animate bool
}

type Widget struct {
	children template.HTML
	target   Target
	classes  []string
	class    string
	clock    clockwork.Clock
	delay    time.Duration

	mu       sync.Mutex
	state    State
	torn     bool
	timer    clockwork.Timer
	stopWait func() bool
}

type Option func(*Widget)

func WithURL(url string) Option {
	return func(w *Widget) { w.target = Classify(url) }
}

// WithClass appends caller classes after the marker class. Repeated calls
// accumulate.
func WithClass(classes ...string) Option {
	return func(w *Widget) { w.classes = append(w.classes, classes...) }
}

func WithClock(clock clockwork.Clock) Option {
	return func(w *Widget) { w.clock = clock }
}

func WithDelay(d time.Duration) Option {
	return func(w *Widget) { w.delay = d }
}

// New creates an unmounted widget. Children are required; passing none is a
// programming error and panics.
func New(children template.HTML, opts ...Option) *Widget {
	if strings.TrimSpace(string(children)) == "" {
		panic("highlight: children are required")
	}

	w := &Widget{
		children: children,
		clock:    clockwork.NewRealClock(),
		delay:    AnimateDelay,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.class = ClassNames(w.classes...)

	return w
}

func (w *Widget) Target() Target {
	return w.target
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Mount schedules the animation flag. The pending timer lives until Unmount
// is called or ctx is done, whichever comes first. A widget mounts once.
func (w *Widget) Mount(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.torn {
		return ErrUnmounted
	}

	if w.state.Mounted {
		return ErrAlreadyMounted
	}

	w.state.Mounted = true
	w.timer = w.clock.AfterFunc(w.delay, w.animate)
	w.stopWait = context.AfterFunc(ctx, w.Unmount)

	return nil
}

// Unmount tears the widget down and cancels a pending animation. It is safe
// to call more than once.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.state.Mounted {
		return
	}

	w.state.Mounted = false
	w.torn = true
	w.timer.Stop()
	w.stopWait()
}

func (w *Widget) animate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	// The timer can fire while Unmount waits for the lock.
	if !w.state.Mounted {
		return
	}

	w.state.Animate = true
}

// Render writes the widget markup for its current state.
func (w *Widget) Render() (template.HTML, error) {
	state := w.State()

	data := struct {
		Class    string
		URL      string
		Children template.HTML
		Animate  bool
		Internal bool
		External bool
	}{
		Class:    w.class,
		URL:      w.target.URL,
		Children: w.children,
		Animate:  state.Animate,
		Internal: w.target.Kind == Internal,
		External: w.target.Kind == External,
	}

	var buf bytes.Buffer

	if err := widgetTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("could not render highlight: %w", err)
	}

	// nolint: gosec
	return template.HTML(buf.String()), nil
}
