package mocksportsdata

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/footworks/footyscope/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) Leagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *Client) LeagueByID(ctx context.Context, id string) (*model.League, error) {
	args := c.Called(ctx, id)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *Client) TeamsByLeague(ctx context.Context, leagueID string) ([]model.Team, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) TeamByID(ctx context.Context, id string) (*model.Team, error) {
	args := c.Called(ctx, id)

	var res *model.Team
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) PlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	args := c.Called(ctx, teamID)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) PlayerByID(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var res *model.Player
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) SearchPlayers(ctx context.Context, name string) ([]model.Player, error) {
	args := c.Called(ctx, name)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) SearchTeams(ctx context.Context, name string) ([]model.Team, error) {
	args := c.Called(ctx, name)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) NextEvents(ctx context.Context, leagueID string) ([]model.Event, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Event
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Event)
	}

	return res, args.Error(1)
}

func (c *Client) LastEvents(ctx context.Context, leagueID string) ([]model.Event, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Event
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Event)
	}

	return res, args.Error(1)
}

func (c *Client) EventByID(ctx context.Context, id string) (*model.Event, error) {
	args := c.Called(ctx, id)

	var res *model.Event
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Event)
	}

	return res, args.Error(1)
}

func (c *Client) GatherPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}
