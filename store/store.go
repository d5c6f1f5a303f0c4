// Package store is the domain store: a single state tree mutated only by
// pure slice reducers, with asynchronous thunks that call the gateway
// clients and dispatch plain actions. Dispatches are applied strictly one
// at a time, so reducers never observe a half-applied transition even
// though thunks complete on arbitrary goroutines.
//
// Reducers return commands alongside the new state for side effects that
// must follow a transition (persisting favorites, theme, session). Commands
// run fire-and-forget after the transition commits, strictly in commit
// order; their failures are logged and swallowed, never surfaced.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"

	"github.com/footworks/footyscope/authapi"
	"github.com/footworks/footyscope/platforms/news"
	"github.com/footworks/footyscope/platforms/places"
	"github.com/footworks/footyscope/platforms/sportsdata"
	"github.com/footworks/footyscope/storage"
)

// Config selects the app variant's behavior: which key the favorites list
// persists under and the default theme.
type Config struct {
	FavoritesKey    string
	DefaultDarkMode bool
}

// FootyScopeConfig is the football-browser variant: dark by default,
// favorites under the football key.
func FootyScopeConfig() Config {
	return Config{
		FavoritesKey:    storage.KeyFootballFavorites,
		DefaultDarkMode: true,
	}
}

// CourtFinderConfig is the venue-locator variant: light by default,
// favorites under its own key.
func CourtFinderConfig() Config {
	return Config{
		FavoritesKey:    storage.KeyVenueFavorites,
		DefaultDarkMode: false,
	}
}

const commandTimeout = 5 * time.Second

// Command is a side effect emitted by a reducer, executed after the
// transition commits. Commands must not dispatch.
type Command interface {
	Run(ctx context.Context, env *Env) error
}

// Env is what commands get to work with.
type Env struct {
	LPS          storage.Store
	FavoritesKey string
}

type Store struct {
	cfg    Config
	clock  clock.Clock
	log    zerolog.Logger
	lps    storage.Store
	auth   authapi.Client
	sports sportsdata.Client
	news   news.Client
	places places.Client

	mu     sync.Mutex
	state  State
	subs   map[int]chan State
	nextID int

	genMu sync.Mutex
	gens  map[Resource]uint64

	cmdMu    sync.Mutex
	cmdQueue []Command
	cmdBusy  bool
	cmdWG    sync.WaitGroup
}

// Deps are the collaborators the thunks call. Any client a variant does not
// use may be nil as long as its thunks are never invoked.
type Deps struct {
	Clock  clock.Clock
	Log    zerolog.Logger
	LPS    storage.Store
	Auth   authapi.Client
	Sports sportsdata.Client
	News   news.Client
	Places places.Client
}

func New(cfg Config, deps Deps) *Store {
	c := deps.Clock
	if c == nil {
		c = clock.New()
	}
	return &Store{
		cfg:    cfg,
		clock:  c,
		log:    deps.Log,
		lps:    deps.LPS,
		auth:   deps.Auth,
		sports: deps.Sports,
		news:   deps.News,
		places: deps.Places,
		state:  initialState(cfg),
		subs:   map[int]chan State{},
		gens:   map[Resource]uint64{},
	}
}

// State returns a snapshot of the whole tree.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel that receives a snapshot after every commit,
// and a cancel function. A slow subscriber only ever lags by one snapshot:
// stale undelivered snapshots are replaced, not queued.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	ch := make(chan State, 1)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Dispatch applies an action. Transitions are serialized: the reducers for
// one action finish, and subscribers are notified, before the next action
// begins. Emitted commands are queued in commit order and run on a
// background goroutine.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	next, cmds := reduce(s.state, a)
	s.state = next
	for _, ch := range s.subs {
		select {
		case ch <- next:
		default:
			// Replace the undelivered snapshot with the fresh one.
			select {
			case <-ch:
			default:
			}
			ch <- next
		}
	}
	// Enqueue while still holding mu so queue order matches commit order;
	// two commits writing the same key must persist in that order.
	s.enqueueCommands(cmds)
	s.mu.Unlock()
}

// enqueueCommands appends to the command queue and ensures one (and only
// one) drain goroutine is running. Commands execute strictly in queue order.
func (s *Store) enqueueCommands(cmds []Command) {
	if len(cmds) == 0 {
		return
	}
	s.cmdMu.Lock()
	s.cmdQueue = append(s.cmdQueue, cmds...)
	if s.cmdBusy {
		s.cmdMu.Unlock()
		return
	}
	s.cmdBusy = true
	s.cmdMu.Unlock()

	s.cmdWG.Add(1)
	go s.drainCommands()
}

func (s *Store) drainCommands() {
	defer s.cmdWG.Done()
	for {
		s.cmdMu.Lock()
		if len(s.cmdQueue) == 0 {
			s.cmdBusy = false
			s.cmdMu.Unlock()
			return
		}
		cmd := s.cmdQueue[0]
		s.cmdQueue = s.cmdQueue[1:]
		s.cmdMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		env := &Env{LPS: s.lps, FavoritesKey: s.cfg.FavoritesKey}
		if err := cmd.Run(ctx, env); err != nil {
			s.log.Warn().Err(err).Msg("persistence command failed")
		}
		cancel()
	}
}

// Flush blocks until all commands emitted so far have finished. Used by
// shutdown paths and tests.
func (s *Store) Flush() {
	s.cmdWG.Wait()
}

// nextGen advances the request generation for a resource. A thunk captures
// the returned value before fetching and stamps its completion actions with
// it; the reducer discards completions whose generation has been
// superseded.
func (s *Store) nextGen(res Resource) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	s.gens[res]++
	return s.gens[res]
}

// reduce feeds the action to every slice reducer. Slices are disjoint and
// never read each other's state here; cross-slice reads belong in thunks or
// the view layer.
func reduce(s State, a Action) (State, []Command) {
	var cmds []Command

	var c []Command
	s.Auth, c = reduceAuth(s.Auth, a)
	cmds = append(cmds, c...)

	s.Catalog = reduceCatalog(s.Catalog, a)
	s.Venues = reduceVenues(s.Venues, a)
	s.News = reduceNews(s.News, a)

	s.Favorites, c = reduceFavorites(s.Favorites, a)
	cmds = append(cmds, c...)

	s.Theme, c = reduceTheme(s.Theme, a)
	cmds = append(cmds, c...)

	return s, cmds
}
