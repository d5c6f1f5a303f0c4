package store

import "github.com/footworks/footyscope/model"

// Resource identifies one independently fetched sub-resource. Each has its
// own loading/error status and its own staleness generation.
type Resource string

const (
	ResLeagues      Resource = "leagues"
	ResLeagueDetail Resource = "leagueDetail"
	ResTeams        Resource = "teams"
	ResTeamDetail   Resource = "teamDetail"
	ResPlayers      Resource = "players"
	ResPlayerDetail Resource = "playerDetail"
	ResNextEvents   Resource = "nextEvents"
	ResLastEvents   Resource = "lastEvents"
	ResEventDetail  Resource = "eventDetail"
	ResSearchPool   Resource = "searchPool"
	ResVenues       Resource = "venues"
)

// Status is the fetch lifecycle of one resource. Err is a user-displayable
// message, empty when the last fetch succeeded.
type Status struct {
	Loading bool
	Err     string
}

// AuthState mirrors the session. IsAuthenticated is true exactly when
// Session is non-nil.
type AuthState struct {
	Loading         bool
	Session         *model.Session
	IsAuthenticated bool
	Error           string
}

// User returns the profile of the signed-in user, or nil.
func (s AuthState) User() *model.UserProfile {
	if s.Session == nil {
		return nil
	}
	u := s.Session.User
	return &u
}

// CatalogState holds the football data. Detail fields are nil until a
// detail fetch completes; a completed fetch that found nothing leaves the
// field nil with a clean status, which the view renders as "not found".
type CatalogState struct {
	Leagues       []model.League
	Teams         []model.Team
	Players       []model.Player
	NextEvents    []model.Event
	LastEvents    []model.Event
	SearchPool    []model.Player
	CurrentLeague *model.League
	CurrentTeam   *model.Team
	CurrentPlayer *model.Player
	CurrentEvent  *model.Event

	status map[Resource]Status
	gens   map[Resource]uint64
}

// StatusOf returns the fetch status for a resource.
func (s CatalogState) StatusOf(res Resource) Status {
	return s.status[res]
}

func (s CatalogState) withStatus(res Resource, st Status) CatalogState {
	s.status = cloneStatusMap(s.status)
	s.status[res] = st
	return s
}

func (s CatalogState) withGen(res Resource, gen uint64) CatalogState {
	s.gens = cloneGenMap(s.gens)
	s.gens[res] = gen
	return s
}

// stale reports whether a completion belongs to a superseded request.
func (s CatalogState) stale(res Resource, gen uint64) bool {
	return gen < s.gens[res]
}

// VenuesState holds the venue-locator data.
type VenuesState struct {
	Items   []model.Venue
	Loading bool
	Err     string
	gen     uint64
}

// NewsState holds headlines. The news gateway always produces data, so
// there is no error field.
type NewsState struct {
	Articles []model.NewsArticle
	Loading  bool
}

// FavoritesState is the set of favorited item ids, kept as an ordered list
// with no duplicates.
type FavoritesState struct {
	IDs []string
}

// Has reports membership. A linear scan; the list holds a few dozen ids at
// most.
func (s FavoritesState) Has(id string) bool {
	for _, v := range s.IDs {
		if v == id {
			return true
		}
	}
	return false
}

type ThemeState struct {
	IsDarkMode bool
}

// State is the whole tree. It is passed around by value; slices and maps
// inside are never mutated in place by reducers, so a snapshot stays valid
// after later dispatches.
type State struct {
	Auth      AuthState
	Catalog   CatalogState
	Venues    VenuesState
	News      NewsState
	Favorites FavoritesState
	Theme     ThemeState
}

func initialState(cfg Config) State {
	return State{
		Catalog: CatalogState{
			status: map[Resource]Status{},
			gens:   map[Resource]uint64{},
		},
		Theme: ThemeState{IsDarkMode: cfg.DefaultDarkMode},
	}
}

func cloneStatusMap(m map[Resource]Status) map[Resource]Status {
	out := make(map[Resource]Status, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneGenMap(m map[Resource]uint64) map[Resource]uint64 {
	out := make(map[Resource]uint64, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
