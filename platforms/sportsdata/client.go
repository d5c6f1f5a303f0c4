// Package sportsdata wraps the sports-statistics provider behind gateway
// functions that normalize its quirks: list keys that may be null or
// missing, by-id lookups that return a singleton array, and mixed-sport
// listings that need filtering.
package sportsdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/footworks/footyscope/apperr"
	"github.com/footworks/footyscope/model"
	"github.com/footworks/footyscope/platforms/sportsdata/internal"
)

const (
	// Free tier of the provider, no key required.
	DefaultURL = "https://www.thesportsdb.com/api/v1/json/3"

	// Only the top leagues are shown; the provider lists hundreds.
	maxLeagues = 20
)

// SeedLetters is the bounded query alphabet used by GatherPlayers. The
// provider has no "list all players" endpoint, so a fixed set of common
// letters approximates one.
var SeedLetters = []string{"a", "b", "c", "d", "e", "m", "r", "s"}

type Client interface {
	Leagues(ctx context.Context) ([]model.League, error)
	LeagueByID(ctx context.Context, id string) (*model.League, error)
	TeamsByLeague(ctx context.Context, leagueID string) ([]model.Team, error)
	TeamByID(ctx context.Context, id string) (*model.Team, error)
	PlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error)
	PlayerByID(ctx context.Context, id string) (*model.Player, error)
	SearchPlayers(ctx context.Context, name string) ([]model.Player, error)
	SearchTeams(ctx context.Context, name string) ([]model.Team, error)
	NextEvents(ctx context.Context, leagueID string) ([]model.Event, error)
	LastEvents(ctx context.Context, leagueID string) ([]model.Event, error)
	EventByID(ctx context.Context, id string) (*model.Event, error)

	// GatherPlayers builds an approximate all-players pool for client-side
	// search by running the seed-letter queries and deduplicating.
	GatherPlayers(ctx context.Context) ([]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New() (Client, error) {
	return &client{
		url: DefaultURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// The free tier throttles around 30 requests/min.
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
	}, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func (c *client) Leagues(ctx context.Context) ([]model.League, error) {
	doc, err := c.get(ctx, "/all_leagues.php")
	if err != nil {
		return nil, apperr.Network("Failed to fetch leagues", err)
	}
	leagues := []model.League{}
	for _, r := range doc.Get("leagues").Array() {
		if r.Get("strSport").String() != model.SportSoccer {
			continue
		}
		leagues = append(leagues, internal.LeagueFromJSON(r))
		if len(leagues) == maxLeagues {
			break
		}
	}
	return leagues, nil
}

func (c *client) LeagueByID(ctx context.Context, id string) (*model.League, error) {
	doc, err := c.get(ctx, "/lookupleague.php?id=%s", id)
	if err != nil {
		return nil, apperr.Network("Failed to fetch league details", err)
	}
	rows := doc.Get("leagues").Array()
	if len(rows) == 0 {
		return nil, nil
	}
	l := internal.LeagueFromJSON(rows[0])
	return &l, nil
}

func (c *client) TeamsByLeague(ctx context.Context, leagueID string) ([]model.Team, error) {
	doc, err := c.get(ctx, "/lookup_all_teams.php?id=%s", leagueID)
	if err != nil {
		return nil, apperr.Network("Failed to fetch teams", err)
	}
	teams := []model.Team{}
	for _, r := range doc.Get("teams").Array() {
		teams = append(teams, internal.TeamFromJSON(r))
	}
	return teams, nil
}

func (c *client) TeamByID(ctx context.Context, id string) (*model.Team, error) {
	doc, err := c.get(ctx, "/lookupteam.php?id=%s", id)
	if err != nil {
		return nil, apperr.Network("Failed to fetch team details", err)
	}
	rows := doc.Get("teams").Array()
	if len(rows) == 0 {
		return nil, nil
	}
	t := internal.TeamFromJSON(rows[0])
	return &t, nil
}

func (c *client) PlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	doc, err := c.get(ctx, "/lookup_all_players.php?id=%s", teamID)
	if err != nil {
		return nil, apperr.Network("Failed to fetch players", err)
	}
	players := []model.Player{}
	// This endpoint uses the singular "player" key.
	for _, r := range doc.Get("player").Array() {
		players = append(players, internal.PlayerFromJSON(r))
	}
	return players, nil
}

func (c *client) PlayerByID(ctx context.Context, id string) (*model.Player, error) {
	doc, err := c.get(ctx, "/lookupplayer.php?id=%s", id)
	if err != nil {
		return nil, apperr.Network("Failed to fetch player details", err)
	}
	rows := doc.Get("players").Array()
	if len(rows) == 0 {
		return nil, nil
	}
	p := internal.PlayerFromJSON(rows[0])
	return &p, nil
}

func (c *client) SearchPlayers(ctx context.Context, name string) ([]model.Player, error) {
	doc, err := c.get(ctx, "/searchplayers.php?p=%s", url.QueryEscape(name))
	if err != nil {
		return nil, apperr.Network("Failed to search players", err)
	}
	players := []model.Player{}
	for _, r := range doc.Get("player").Array() {
		players = append(players, internal.PlayerFromJSON(r))
	}
	return players, nil
}

func (c *client) SearchTeams(ctx context.Context, name string) ([]model.Team, error) {
	doc, err := c.get(ctx, "/searchteams.php?t=%s", url.QueryEscape(name))
	if err != nil {
		return nil, apperr.Network("Failed to search teams", err)
	}
	teams := []model.Team{}
	for _, r := range doc.Get("teams").Array() {
		teams = append(teams, internal.TeamFromJSON(r))
	}
	return teams, nil
}

func (c *client) NextEvents(ctx context.Context, leagueID string) ([]model.Event, error) {
	doc, err := c.get(ctx, "/eventsnextleague.php?id=%s", leagueID)
	if err != nil {
		return nil, apperr.Network("Failed to fetch upcoming matches", err)
	}
	return eventList(doc), nil
}

func (c *client) LastEvents(ctx context.Context, leagueID string) ([]model.Event, error) {
	doc, err := c.get(ctx, "/eventspastleague.php?id=%s", leagueID)
	if err != nil {
		return nil, apperr.Network("Failed to fetch match results", err)
	}
	return eventList(doc), nil
}

func (c *client) EventByID(ctx context.Context, id string) (*model.Event, error) {
	doc, err := c.get(ctx, "/lookupevent.php?id=%s", id)
	if err != nil {
		return nil, apperr.Network("Failed to fetch match details", err)
	}
	rows := doc.Get("events").Array()
	if len(rows) == 0 {
		return nil, nil
	}
	e := internal.EventFromJSON(rows[0])
	return &e, nil
}

func (c *client) GatherPlayers(ctx context.Context) ([]model.Player, error) {
	seen := make(map[string]bool)
	pool := []model.Player{}
	for _, letter := range SeedLetters {
		players, err := c.SearchPlayers(ctx, letter)
		if err != nil {
			return nil, err
		}
		for _, p := range players {
			// The provider tags soccer players inconsistently.
			if p.Sport != model.SportSoccer && p.Sport != "Football" {
				continue
			}
			if p.ID == "" || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			pool = append(pool, p)
		}
	}
	return pool, nil
}

func eventList(doc gjson.Result) []model.Event {
	events := []model.Event{}
	for _, r := range doc.Get("events").Array() {
		events = append(events, internal.EventFromJSON(r))
	}
	return events
}

func (c *client) get(ctx context.Context, path string, args ...any) (gjson.Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return gjson.Result{}, err
	}

	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+p, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("error creating sportsdata http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("error sending sportsdata http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("unexpected status code from sportsdata: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("error reading sportsdata response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("invalid json from sportsdata")
	}
	return gjson.ParseBytes(body), nil
}
