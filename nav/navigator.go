package nav

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dasdy/stockroom/logging"
)

var logCtx = logging.PackageCtx("nav")

// Params holds the values bound to :name segments of a matched pattern.
// Values are always strings; coercion is the page's responsibility.
type Params map[string]string

// Page is whatever a route factory builds. The Navigator only cares about the
// optional Initer and Disposer facets; the shell asserts its own view interface.
type Page any

// Initer is awaited by the Navigator after a successful match, before the
// route-change callback fires.
type Initer interface {
	Init(ctx context.Context) error
}

// Disposer releases timers/listeners deterministically when the page is
// replaced by the next navigation.
type Disposer interface {
	Dispose()
}

// Factory builds a fresh Page for one resolved route. A page instance is never
// reused across navigations, even for the same pattern.
type Factory func(params Params) Page

// ErrorPage replaces page content when construction or Init fails. The shell
// renders it with a one-key return to the root route.
type ErrorPage struct {
	Path string
	Err  error
}

type route struct {
	pattern string
	factory Factory
}

// Navigator owns the current location, the route table, and the page lifecycle.
// Routes are registered once at startup; the table is read-only afterwards.
type Navigator struct {
	history History

	mu        sync.Mutex
	routes    []route
	byPattern map[string]int
	seq       uint64
	current   string
	page      Page

	onPage  func(Page)
	onRoute func(path string)

	done chan struct{}
}

func New(history History) *Navigator {
	return &Navigator{
		history:   history,
		byPattern: make(map[string]int),
		done:      make(chan struct{}),
	}
}

// Register adds a route. Registering the same pattern twice replaces the
// factory (last registration wins) and logs a warning, since two live routes
// with identical structure would make the winner undefined.
func (n *Navigator) Register(pattern string, factory Factory) {
	pattern = normalize(pattern)

	n.mu.Lock()
	defer n.mu.Unlock()

	if i, ok := n.byPattern[pattern]; ok {
		slog.WarnContext(logCtx, "pattern registered twice, replacing handler", "pattern", pattern)
		n.routes[i].factory = factory

		return
	}

	n.byPattern[pattern] = len(n.routes)
	n.routes = append(n.routes, route{pattern: pattern, factory: factory})
}

// OnPage sets the callback receiving every committed page (including ErrorPage).
func (n *Navigator) OnPage(fn func(Page)) {
	n.onPage = fn
}

// OnRouteChange sets the single route-change callback, used by the shell to
// refresh navigation highlighting.
func (n *Navigator) OnRouteChange(fn func(path string)) {
	n.onRoute = fn
}

// Navigate records the path in history and returns. The history change
// notification re-enters the routing pipeline exactly once, asynchronously.
func (n *Navigator) Navigate(path string) {
	n.history.Set(normalize(path))
}

// Back pops history if the backing History supports it.
func (n *Navigator) Back() bool {
	type backer interface{ Back() bool }

	if b, ok := n.history.(backer); ok {
		return b.Back()
	}

	return false
}

// Start resolves the initial location synchronously (without re-recording it in
// history) and then follows history change notifications until ctx is done.
func (n *Navigator) Start(ctx context.Context) {
	n.HandleRoute(ctx, n.history.Current())

	go func() {
		defer close(n.done)

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-n.history.Changes():
				if !ok {
					return
				}
				n.HandleRoute(ctx, n.history.Current())
			}
		}
	}()
}

// Wait blocks until the history-following loop has exited.
func (n *Navigator) Wait() {
	<-n.done
}

// CurrentRoute returns the last successfully resolved path. It can lag the very
// latest navigation while a resolution is in flight.
func (n *Navigator) CurrentRoute() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.current
}

// CurrentPage returns the last committed page.
func (n *Navigator) CurrentPage() Page {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.page
}

// HandleRoute runs the route-resolution pipeline for path. Overlapping calls
// are not serialized: each takes a sequence number, and only the resolution
// that is still the newest at completion time commits its page and fires the
// callbacks. A superseded init still runs to completion; there is no
// cancellation.
func (n *Navigator) HandleRoute(ctx context.Context, path string) {
	path = normalize(path)

	n.mu.Lock()
	n.seq++
	seq := n.seq
	routes := n.routes
	n.mu.Unlock()

	for _, rt := range routes {
		params, ok := Match(rt.pattern, path)
		if !ok {
			continue
		}

		page, err := buildPage(ctx, rt.factory, params)
		if err != nil {
			slog.ErrorContext(logCtx, "page init failed", "path", path, "error", err)
			n.commit(seq, path, ErrorPage{Path: path, Err: err})

			return
		}

		n.commit(seq, path, page)

		return
	}

	// Unmatched paths redirect to the root route. This is policy, not an error.
	if path == "/" {
		slog.ErrorContext(logCtx, "root route is not registered")
		n.commit(seq, path, ErrorPage{Path: path, Err: fmt.Errorf("no route matches %q", path)})

		return
	}

	slog.DebugContext(logCtx, "no route matches, falling back to root", "path", path)
	n.HandleRoute(ctx, "/")
}

// buildPage isolates factory and Init failures: the Navigator is the boundary
// that converts them into an error surface instead of letting them escape.
func buildPage(ctx context.Context, factory Factory, params Params) (page Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page panicked: %v", r)
		}
	}()

	page = factory(params)

	if init, ok := page.(Initer); ok {
		if err := init.Init(ctx); err != nil {
			return nil, fmt.Errorf("init page: %w", err)
		}
	}

	return page, nil
}

func (n *Navigator) commit(seq uint64, path string, page Page) {
	n.mu.Lock()

	if seq != n.seq {
		n.mu.Unlock()
		slog.DebugContext(logCtx, "discarding superseded navigation", "path", path)

		if d, ok := page.(Disposer); ok {
			d.Dispose()
		}

		return
	}

	if d, ok := n.page.(Disposer); ok {
		d.Dispose()
	}

	n.page = page
	n.current = path
	onPage, onRoute := n.onPage, n.onRoute
	n.mu.Unlock()

	if onPage != nil {
		onPage(page)
	}

	if onRoute != nil {
		onRoute(path)
	}
}

// Match checks path against a slash-delimited pattern. Segment counts must be
// equal; literal segments must match positionally; :name segments bind params.
func Match(pattern, path string) (Params, bool) {
	psegs := segments(pattern)
	segs := segments(path)

	if len(psegs) != len(segs) {
		return nil, false
	}

	params := Params{}

	for i, pseg := range psegs {
		if name, ok := strings.CutPrefix(pseg, ":"); ok {
			params[name] = segs[i]

			continue
		}

		if pseg != segs[i] {
			return nil, false
		}
	}

	return params, true
}

func segments(path string) []string {
	trimmed := strings.Trim(normalize(path), "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	return path
}
