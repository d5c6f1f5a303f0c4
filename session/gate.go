// Package session owns the top-level navigation decision: exactly one of
// two graphs is mounted at any time, chosen solely by whether a session
// exists. The gate also kicks off storage hydration when it starts.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/footworks/footyscope/store"
)

// Graph is one of the two navigation trees. Run blocks until ctx is
// cancelled; the gate cancels it when the auth flag flips.
type Graph interface {
	Run(ctx context.Context)
}

// GraphFunc adapts a plain function to a Graph.
type GraphFunc func(ctx context.Context)

func (f GraphFunc) Run(ctx context.Context) { f(ctx) }

type Gate struct {
	store           *store.Store
	unauthenticated Graph
	authenticated   Graph
	log             zerolog.Logger
}

func New(st *store.Store, unauthenticated, authenticated Graph, log zerolog.Logger) *Gate {
	return &Gate{
		store:           st,
		unauthenticated: unauthenticated,
		authenticated:   authenticated,
		log:             log,
	}
}

// Run hydrates the store and then keeps the graph matching the auth flag
// until ctx is cancelled. Hydration reads are independent and run
// concurrently; the unauthenticated graph mounts immediately rather than
// waiting for them, so a restored session may briefly show the login
// screen before flipping. There is no distinct "checking" state.
func (g *Gate) Run(ctx context.Context) {
	sub, cancelSub := g.store.Subscribe()
	defer cancelSub()

	var wg sync.WaitGroup
	for _, hydrate := range []func(context.Context){
		g.store.CheckAuthStatus,
		g.store.LoadFavoritesFromStorage,
		g.store.LoadThemeFromStorage,
	} {
		wg.Add(1)
		go func(hydrate func(context.Context)) {
			defer wg.Done()
			hydrate(ctx)
		}(hydrate)
	}
	defer wg.Wait()

	authenticated := g.store.State().Auth.IsAuthenticated
	unmount := g.mount(ctx, authenticated)
	defer func() { unmount() }()

	for {
		select {
		case <-ctx.Done():
			return
		case st := <-sub:
			if st.Auth.IsAuthenticated == authenticated {
				continue
			}
			authenticated = st.Auth.IsAuthenticated
			unmount()
			unmount = g.mount(ctx, authenticated)
		}
	}
}

// mount starts the graph for the current auth state and returns a function
// that cancels it and waits for it to exit.
func (g *Gate) mount(ctx context.Context, authenticated bool) func() {
	graph := g.unauthenticated
	name := "unauthenticated"
	if authenticated {
		graph = g.authenticated
		name = "authenticated"
	}
	g.log.Debug().Str("graph", name).Msg("mounting navigation graph")

	graphCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		graph.Run(graphCtx)
	}()

	return func() {
		cancel()
		<-done
	}
}
