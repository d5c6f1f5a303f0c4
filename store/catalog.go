package store

import (
	"context"

	"github.com/footworks/footyscope/apperr"
	"github.com/footworks/footyscope/model"
)

func reduceCatalog(s CatalogState, a Action) CatalogState {
	switch a := a.(type) {
	case catalogPending:
		// A pending whose generation was already superseded must not roll
		// the counter back (or re-enter loading): its completion is going
		// to be discarded anyway.
		if s.stale(a.res, a.gen) {
			return s
		}
		s = s.withGen(a.res, a.gen)
		return s.withStatus(a.res, Status{Loading: true})
	case catalogFulfilled:
		if s.stale(a.res, a.gen) {
			return s
		}
		s = applyCatalogPayload(s, a.res, a.payload)
		return s.withStatus(a.res, Status{})
	case catalogRejected:
		if s.stale(a.res, a.gen) {
			return s
		}
		return s.withStatus(a.res, Status{Err: a.msg})
	}
	return s
}

func applyCatalogPayload(s CatalogState, res Resource, payload any) CatalogState {
	switch res {
	case ResLeagues:
		s.Leagues, _ = payload.([]model.League)
	case ResLeagueDetail:
		s.CurrentLeague, _ = payload.(*model.League)
	case ResTeams:
		s.Teams, _ = payload.([]model.Team)
	case ResTeamDetail:
		s.CurrentTeam, _ = payload.(*model.Team)
	case ResPlayers:
		s.Players, _ = payload.([]model.Player)
	case ResPlayerDetail:
		s.CurrentPlayer, _ = payload.(*model.Player)
	case ResNextEvents:
		s.NextEvents, _ = payload.([]model.Event)
	case ResLastEvents:
		s.LastEvents, _ = payload.([]model.Event)
	case ResEventDetail:
		s.CurrentEvent, _ = payload.(*model.Event)
	case ResSearchPool:
		s.SearchPool, _ = payload.([]model.Player)
	}
	return s
}

// fetchCatalog runs the shared three-action lifecycle for one resource.
func (s *Store) fetchCatalog(res Resource, fetch func() (any, error)) {
	gen := s.nextGen(res)
	s.Dispatch(catalogPending{res: res, gen: gen})

	payload, err := fetch()
	if err != nil {
		s.Dispatch(catalogRejected{res: res, gen: gen, msg: apperr.Message(err, "Something went wrong")})
		return
	}
	s.Dispatch(catalogFulfilled{res: res, gen: gen, payload: payload})
}

// FetchLeagues loads the soccer league list (at most 20 entries).
func (s *Store) FetchLeagues(ctx context.Context) {
	s.fetchCatalog(ResLeagues, func() (any, error) {
		return s.sports.Leagues(ctx)
	})
}

// FetchLeagueDetails loads one league by id. A missing league fulfills with
// nil; the view renders that as "not found".
func (s *Store) FetchLeagueDetails(ctx context.Context, id string) {
	s.fetchCatalog(ResLeagueDetail, func() (any, error) {
		return s.sports.LeagueByID(ctx, id)
	})
}

// FetchTeams loads the teams of a league.
func (s *Store) FetchTeams(ctx context.Context, leagueID string) {
	s.fetchCatalog(ResTeams, func() (any, error) {
		return s.sports.TeamsByLeague(ctx, leagueID)
	})
}

// FetchTeamDetails loads one team by id.
func (s *Store) FetchTeamDetails(ctx context.Context, id string) {
	s.fetchCatalog(ResTeamDetail, func() (any, error) {
		return s.sports.TeamByID(ctx, id)
	})
}

// FetchPlayers loads a team's roster.
func (s *Store) FetchPlayers(ctx context.Context, teamID string) {
	s.fetchCatalog(ResPlayers, func() (any, error) {
		return s.sports.PlayersByTeam(ctx, teamID)
	})
}

// FetchPlayerDetails loads one player by id.
func (s *Store) FetchPlayerDetails(ctx context.Context, id string) {
	s.fetchCatalog(ResPlayerDetail, func() (any, error) {
		return s.sports.PlayerByID(ctx, id)
	})
}

// FetchNextEvents loads a league's upcoming fixtures.
func (s *Store) FetchNextEvents(ctx context.Context, leagueID string) {
	s.fetchCatalog(ResNextEvents, func() (any, error) {
		return s.sports.NextEvents(ctx, leagueID)
	})
}

// FetchLastEvents loads a league's recent results.
func (s *Store) FetchLastEvents(ctx context.Context, leagueID string) {
	s.fetchCatalog(ResLastEvents, func() (any, error) {
		return s.sports.LastEvents(ctx, leagueID)
	})
}

// FetchEventDetails loads one match by id.
func (s *Store) FetchEventDetails(ctx context.Context, id string) {
	s.fetchCatalog(ResEventDetail, func() (any, error) {
		return s.sports.EventByID(ctx, id)
	})
}

// LoadSearchPool builds the in-memory pool that client-side player search
// filters over. One shot per search-screen mount; typing never refetches.
func (s *Store) LoadSearchPool(ctx context.Context) {
	s.fetchCatalog(ResSearchPool, func() (any, error) {
		return s.sports.GatherPlayers(ctx)
	})
}
