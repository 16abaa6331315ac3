package nav_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dasdy/stockroom/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakePage is a minimal page with observable lifecycle.
type fakePage struct {
	name        string
	params      nav.Params
	initErr     error
	initGate    chan struct{} // when non-nil, Init blocks until closed
	initStarted chan struct{} // when non-nil, closed as soon as Init is entered

	mu       sync.Mutex
	inited   bool
	disposed bool
}

func (p *fakePage) Init(_ context.Context) error {
	if p.initStarted != nil {
		close(p.initStarted)
	}

	if p.initGate != nil {
		<-p.initGate
	}

	p.mu.Lock()
	p.inited = true
	p.mu.Unlock()

	return p.initErr
}

func (p *fakePage) Dispose() {
	p.mu.Lock()
	p.disposed = true
	p.mu.Unlock()
}

func (p *fakePage) isDisposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.disposed
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		path       string
		wantOK     bool
		wantParams nav.Params
	}{
		{
			name:       "literal match",
			pattern:    "/inventories",
			path:       "/inventories",
			wantOK:     true,
			wantParams: nav.Params{},
		},
		{
			name:       "param extraction",
			pattern:    "/inventories/:id",
			path:       "/inventories/42",
			wantOK:     true,
			wantParams: nav.Params{"id": "42"},
		},
		{
			name:    "segment count differs",
			pattern: "/inventories/:id",
			path:    "/inventories",
			wantOK:  false,
		},
		{
			name:    "literal segment differs",
			pattern: "/inventories/:id",
			path:    "/suppliers/42",
			wantOK:  false,
		},
		{
			name:       "root",
			pattern:    "/",
			path:       "/",
			wantOK:     true,
			wantParams: nav.Params{},
		},
		{
			name:       "trailing slash normalized",
			pattern:    "/quality-control",
			path:       "/quality-control/",
			wantOK:     true,
			wantParams: nav.Params{},
		},
		{
			name:       "multiple params",
			pattern:    "/inventories/:id/items/:itemId",
			path:       "/inventories/7/items/9",
			wantOK:     true,
			wantParams: nav.Params{"id": "7", "itemId": "9"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params, ok := nav.Match(tc.pattern, tc.path)

			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantParams, params)
			}
		})
	}
}

func newTestNavigator(initial string) (*nav.Navigator, *nav.MemoryHistory) {
	h := nav.NewMemoryHistory(initial)

	return nav.New(h), h
}

func TestHandleRouteExtractsParams(t *testing.T) {
	n, _ := newTestNavigator("/")

	var got nav.Params

	n.Register("/inventories/:id", func(params nav.Params) nav.Page {
		got = params

		return &fakePage{name: "detail", params: params}
	})

	n.HandleRoute(context.Background(), "/inventories/42")

	assert.Equal(t, nav.Params{"id": "42"}, got)
	assert.Equal(t, "/inventories/42", n.CurrentRoute())
}

func TestUnregisteredPathFallsBackToRoot(t *testing.T) {
	n, _ := newTestNavigator("/")

	var routes []string

	n.Register("/", func(nav.Params) nav.Page { return &fakePage{name: "dashboard"} })
	n.OnRouteChange(func(path string) { routes = append(routes, path) })

	n.HandleRoute(context.Background(), "/no/such/route")

	assert.Equal(t, "/", n.CurrentRoute())
	assert.Equal(t, []string{"/"}, routes)
}

func TestRegisterTwiceLastWins(t *testing.T) {
	n, _ := newTestNavigator("/")

	n.Register("/inventories", func(nav.Params) nav.Page { return &fakePage{name: "first"} })
	n.Register("/inventories", func(nav.Params) nav.Page { return &fakePage{name: "second"} })

	n.HandleRoute(context.Background(), "/inventories")

	page, ok := n.CurrentPage().(*fakePage)
	require.True(t, ok)
	assert.Equal(t, "second", page.name)
}

func TestInitAwaitedBeforeRouteCallback(t *testing.T) {
	n, _ := newTestNavigator("/")

	page := &fakePage{name: "qc"}
	n.Register("/quality-control", func(nav.Params) nav.Page { return page })

	var initedAtCallback bool

	n.OnRouteChange(func(string) {
		page.mu.Lock()
		initedAtCallback = page.inited
		page.mu.Unlock()
	})

	n.HandleRoute(context.Background(), "/quality-control")

	assert.True(t, initedAtCallback, "route callback must fire after init settles")
}

func TestInitFailureRendersErrorPage(t *testing.T) {
	n, _ := newTestNavigator("/")

	n.Register("/inventories", func(nav.Params) nav.Page {
		return &fakePage{initErr: errors.New("backend is down")}
	})

	n.HandleRoute(context.Background(), "/inventories")

	ep, ok := n.CurrentPage().(nav.ErrorPage)
	require.True(t, ok, "expected an error page, got %T", n.CurrentPage())
	assert.ErrorContains(t, ep.Err, "backend is down")
	assert.Equal(t, "/inventories", n.CurrentRoute())
}

func TestFactoryPanicIsContained(t *testing.T) {
	n, _ := newTestNavigator("/")

	n.Register("/inventories", func(nav.Params) nav.Page {
		panic("constructor exploded")
	})

	n.HandleRoute(context.Background(), "/inventories")

	ep, ok := n.CurrentPage().(nav.ErrorPage)
	require.True(t, ok)
	assert.ErrorContains(t, ep.Err, "constructor exploded")
}

func TestDisposeCalledOnReplacement(t *testing.T) {
	n, _ := newTestNavigator("/")

	first := &fakePage{name: "first"}
	second := &fakePage{name: "second"}

	n.Register("/a", func(nav.Params) nav.Page { return first })
	n.Register("/b", func(nav.Params) nav.Page { return second })

	n.HandleRoute(context.Background(), "/a")
	n.HandleRoute(context.Background(), "/b")

	assert.True(t, first.isDisposed())
	assert.False(t, second.isDisposed())
}

func TestOverlappingNavigationLatestWins(t *testing.T) {
	n, _ := newTestNavigator("/")

	slow := &fakePage{name: "slow", initGate: make(chan struct{}), initStarted: make(chan struct{})}
	fast := &fakePage{name: "fast"}

	n.Register("/slow", func(nav.Params) nav.Page { return slow })
	n.Register("/fast", func(nav.Params) nav.Page { return fast })

	done := make(chan struct{})

	go func() {
		defer close(done)
		n.HandleRoute(context.Background(), "/slow")
	}()

	// The newer navigation resolves while the older init is still in flight.
	<-slow.initStarted
	n.HandleRoute(context.Background(), "/fast")
	assert.Equal(t, "/fast", n.CurrentRoute())

	close(slow.initGate)
	<-done

	// The superseded resolution ran to completion but did not commit.
	assert.Equal(t, "/fast", n.CurrentRoute())
	assert.Equal(t, fast, n.CurrentPage())
	assert.True(t, slow.isDisposed(), "superseded page should be released")
	assert.False(t, fast.isDisposed())
}

func TestNavigateRecordsHistoryAndResolvesAsync(t *testing.T) {
	n, h := newTestNavigator("/")

	n.Register("/", func(nav.Params) nav.Page { return &fakePage{name: "dashboard"} })
	n.Register("/suppliers", func(nav.Params) nav.Page { return &fakePage{name: "suppliers"} })

	resolved := make(chan string, 8)
	n.OnRouteChange(func(path string) { resolved <- path })

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		n.Wait()
	}()

	n.Start(ctx)
	require.Equal(t, "/", <-resolved)

	n.Navigate("/suppliers")

	select {
	case path := <-resolved:
		assert.Equal(t, "/suppliers", path)
	case <-time.After(2 * time.Second):
		t.Fatal("history change notification never re-entered the pipeline")
	}

	assert.Equal(t, "/suppliers", h.Current())
	assert.Equal(t, "/suppliers", n.CurrentRoute())

	// Back pops history and resolves the previous location.
	require.True(t, n.Back())

	select {
	case path := <-resolved:
		assert.Equal(t, "/", path)
	case <-time.After(2 * time.Second):
		t.Fatal("back navigation never resolved")
	}
}

func TestMemoryHistoryBackOnEmptyStack(t *testing.T) {
	h := nav.NewMemoryHistory("/")

	assert.False(t, h.Back())
	assert.Equal(t, "/", h.Current())
}
