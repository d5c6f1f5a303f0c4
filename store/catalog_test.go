package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/footworks/footyscope/apperr"
	"github.com/footworks/footyscope/model"
	"github.com/footworks/footyscope/platforms/sportsdata/mocksportsdata"
)

func TestFetchLeagues_lifecycle(t *testing.T) {
	sports := &mocksportsdata.Client{}
	sports.On("Leagues", mock.Anything).Return([]model.League{
		{ID: "4328", Name: "English Premier League", Sport: model.SportSoccer},
	}, nil)

	s := newTestStore(t, FootyScopeConfig(), testDeps{sports: sports})
	s.FetchLeagues(context.Background())

	c := s.State().Catalog
	if st := c.StatusOf(ResLeagues); st.Loading || st.Err != "" {
		t.Fatalf("unexpected status: %+v", st)
	}
	if len(c.Leagues) != 1 || c.Leagues[0].ID != "4328" {
		t.Errorf("unexpected leagues: %+v", c.Leagues)
	}
}

func TestFetchTeams_rejectedSetsError(t *testing.T) {
	sports := &mocksportsdata.Client{}
	sports.On("TeamsByLeague", mock.Anything, "4328").
		Return(nil, apperr.Network("Failed to fetch teams", nil))

	s := newTestStore(t, FootyScopeConfig(), testDeps{sports: sports})
	s.FetchTeams(context.Background(), "4328")

	c := s.State().Catalog
	st := c.StatusOf(ResTeams)
	if st.Loading {
		t.Errorf("loading should be false")
	}
	if st.Err != "Failed to fetch teams" {
		t.Errorf("unexpected error: %q", st.Err)
	}
	if len(c.Teams) != 0 {
		t.Errorf("teams should be untouched, got %+v", c.Teams)
	}
}

func TestFetchTeams_errorClearedOnRetry(t *testing.T) {
	sports := &mocksportsdata.Client{}
	sports.On("TeamsByLeague", mock.Anything, "4328").
		Return(nil, apperr.Network("Failed to fetch teams", nil)).Once()
	sports.On("TeamsByLeague", mock.Anything, "4328").
		Return([]model.Team{{ID: "133602", Name: "Arsenal"}}, nil).Once()

	s := newTestStore(t, FootyScopeConfig(), testDeps{sports: sports})
	s.FetchTeams(context.Background(), "4328")
	s.FetchTeams(context.Background(), "4328")

	c := s.State().Catalog
	if st := c.StatusOf(ResTeams); st.Err != "" {
		t.Errorf("retry should clear the error, got %q", st.Err)
	}
	if len(c.Teams) != 1 {
		t.Errorf("unexpected teams: %+v", c.Teams)
	}
}

func TestFetchPlayerDetails_notFound(t *testing.T) {
	sports := &mocksportsdata.Client{}
	sports.On("PlayerByID", mock.Anything, "0").Return(nil, nil)

	s := newTestStore(t, FootyScopeConfig(), testDeps{sports: sports})
	s.FetchPlayerDetails(context.Background(), "0")

	c := s.State().Catalog
	if st := c.StatusOf(ResPlayerDetail); st.Loading || st.Err != "" {
		t.Fatalf("a missing record is not an error: %+v", st)
	}
	if c.CurrentPlayer != nil {
		t.Errorf("expected nil player, got %+v", c.CurrentPlayer)
	}
}

func TestCatalogReducer_discardsStaleCompletions(t *testing.T) {
	s := newTestStore(t, FootyScopeConfig(), testDeps{})

	// Two overlapping requests for the same resource; the slower first
	// one resolves after the second and must not clobber it.
	s.Dispatch(catalogPending{res: ResTeams, gen: 1})
	s.Dispatch(catalogPending{res: ResTeams, gen: 2})

	s.Dispatch(catalogFulfilled{res: ResTeams, gen: 2, payload: []model.Team{{ID: "new"}}})
	s.Dispatch(catalogFulfilled{res: ResTeams, gen: 1, payload: []model.Team{{ID: "old"}}})

	c := s.State().Catalog
	if len(c.Teams) != 1 || c.Teams[0].ID != "new" {
		t.Fatalf("stale completion applied, teams=%+v", c.Teams)
	}
	if st := c.StatusOf(ResTeams); st.Loading {
		t.Errorf("loading should be false once the newest request resolved")
	}
}

func TestCatalogReducer_pendingsArrivingOutOfOrder(t *testing.T) {
	s := newTestStore(t, FootyScopeConfig(), testDeps{})

	// Generation issue and dispatch are not atomic, so the older request's
	// pending can arrive after the newer one's. It must not roll the
	// counter back and let its completion through.
	s.Dispatch(catalogPending{res: ResTeams, gen: 2})
	s.Dispatch(catalogPending{res: ResTeams, gen: 1})
	s.Dispatch(catalogFulfilled{res: ResTeams, gen: 2, payload: []model.Team{{ID: "fresh"}}})
	s.Dispatch(catalogFulfilled{res: ResTeams, gen: 1, payload: []model.Team{{ID: "stale"}}})

	c := s.State().Catalog
	if len(c.Teams) != 1 || c.Teams[0].ID != "fresh" {
		t.Fatalf("stale completion applied, teams=%+v", c.Teams)
	}
	if st := c.StatusOf(ResTeams); st.Loading {
		t.Errorf("late stale pending must not re-enter loading")
	}
}

func TestCatalogReducer_discardsStaleRejections(t *testing.T) {
	s := newTestStore(t, FootyScopeConfig(), testDeps{})

	s.Dispatch(catalogPending{res: ResLeagues, gen: 1})
	s.Dispatch(catalogPending{res: ResLeagues, gen: 2})
	s.Dispatch(catalogFulfilled{res: ResLeagues, gen: 2, payload: []model.League{{ID: "4328"}}})
	s.Dispatch(catalogRejected{res: ResLeagues, gen: 1, msg: "Failed to fetch leagues"})

	c := s.State().Catalog
	if st := c.StatusOf(ResLeagues); st.Err != "" {
		t.Errorf("stale rejection applied: %q", st.Err)
	}
	if len(c.Leagues) != 1 {
		t.Errorf("fresh payload lost: %+v", c.Leagues)
	}
}

func TestCatalogResourcesAreIndependent(t *testing.T) {
	sports := &mocksportsdata.Client{}
	sports.On("TeamByID", mock.Anything, "133602").
		Return(&model.Team{ID: "133602", Name: "Arsenal"}, nil)
	sports.On("PlayersByTeam", mock.Anything, "133602").
		Return(nil, apperr.Network("Failed to fetch players", nil))

	s := newTestStore(t, FootyScopeConfig(), testDeps{sports: sports})

	// A detail fetch and a roster fetch for the same screen resolve
	// independently; one failing leaves the other's data intact.
	s.FetchTeamDetails(context.Background(), "133602")
	s.FetchPlayers(context.Background(), "133602")

	c := s.State().Catalog
	if c.CurrentTeam == nil || c.CurrentTeam.Name != "Arsenal" {
		t.Errorf("team detail lost: %+v", c.CurrentTeam)
	}
	if st := c.StatusOf(ResTeamDetail); st.Err != "" {
		t.Errorf("team detail should have no error, got %q", st.Err)
	}
	if st := c.StatusOf(ResPlayers); st.Err != "Failed to fetch players" {
		t.Errorf("players error missing, got %q", st.Err)
	}
}

func TestLoadSearchPool(t *testing.T) {
	sports := &mocksportsdata.Client{}
	sports.On("GatherPlayers", mock.Anything).Return([]model.Player{
		{ID: "1", Name: "Bukayo Saka", Nationality: "England", Team: "Arsenal"},
		{ID: "2", Name: "Martin Odegaard", Nationality: "Norway", Team: "Arsenal"},
	}, nil)

	s := newTestStore(t, FootyScopeConfig(), testDeps{sports: sports})
	s.LoadSearchPool(context.Background())

	if pool := s.State().Catalog.SearchPool; len(pool) != 2 {
		t.Errorf("unexpected pool: %+v", pool)
	}
}
