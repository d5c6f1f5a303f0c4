package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// FakeSportsDataServer serves canned provider responses keyed by endpoint
// path. Tests override individual endpoints with Respond to exercise the
// provider's null-list and singleton-array shapes.
type FakeSportsDataServer struct {
	s *httptest.Server

	mu        sync.Mutex
	responses map[string]string
}

func NewFakeSportsDataServer() *FakeSportsDataServer {
	f := &FakeSportsDataServer{
		responses: map[string]string{
			"/all_leagues.php":        defaultLeaguesJSON,
			"/lookupleague.php":       defaultLeagueDetailJSON,
			"/lookup_all_teams.php":   defaultTeamsJSON,
			"/lookupteam.php":         defaultTeamDetailJSON,
			"/lookup_all_players.php": defaultPlayersJSON,
			"/lookupplayer.php":       defaultPlayerDetailJSON,
			"/searchplayers.php":      defaultSearchPlayersJSON,
			"/searchteams.php":        defaultSearchTeamsJSON,
			"/eventsnextleague.php":   defaultEventsJSON,
			"/eventspastleague.php":   defaultEventsJSON,
			"/lookupevent.php":        defaultEventDetailJSON,
		},
	}

	r := chi.NewRouter()
	for path := range f.responses {
		r.Get(path, f.serve)
	}
	f.s = httptest.NewServer(r)
	return f
}

// Respond replaces the body served for an endpoint path, e.g.
// "/all_leagues.php".
func (f *FakeSportsDataServer) Respond(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = body
}

func (f *FakeSportsDataServer) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	body := f.responses[r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (f *FakeSportsDataServer) Close() {
	f.s.Close()
}

func (f *FakeSportsDataServer) URL() string {
	return f.s.URL
}

const defaultLeaguesJSON = `{"leagues":[
	{"idLeague":"4328","strLeague":"English Premier League","strSport":"Soccer","strLeagueAlternate":"Premier League"},
	{"idLeague":"4391","strLeague":"NFL","strSport":"American Football","strLeagueAlternate":"National Football League"},
	{"idLeague":"4335","strLeague":"Spanish La Liga","strSport":"Soccer","strLeagueAlternate":"La Liga"},
	{"idLeague":"4387","strLeague":"NBA","strSport":"Basketball","strLeagueAlternate":""},
	{"idLeague":"4331","strLeague":"German Bundesliga","strSport":"Soccer","strLeagueAlternate":"Bundesliga"}
]}`

const defaultLeagueDetailJSON = `{"leagues":[
	{"idLeague":"4328","strLeague":"English Premier League","strSport":"Soccer","strCountry":"England","intFormedYear":"1992","strDescriptionEN":"The top flight of English football.","strBadge":"https://example.com/epl.png"}
]}`

const defaultTeamsJSON = `{"teams":[
	{"idTeam":"133602","strTeam":"Arsenal","strLeague":"English Premier League","idLeague":"4328","strStadium":"Emirates Stadium","strCountry":"England"},
	{"idTeam":"133610","strTeam":"Liverpool","strLeague":"English Premier League","idLeague":"4328","strStadium":"Anfield","strCountry":"England"}
]}`

const defaultTeamDetailJSON = `{"teams":[
	{"idTeam":"133602","strTeam":"Arsenal","strLeague":"English Premier League","idLeague":"4328","strStadium":"Emirates Stadium","strCountry":"England","intFormedYear":"1886","strDescriptionEN":"North London club."}
]}`

const defaultPlayersJSON = `{"player":[
	{"idPlayer":"34145937","strPlayer":"Bukayo Saka","strSport":"Soccer","strTeam":"Arsenal","idTeam":"133602","strNationality":"England","strPosition":"Winger"},
	{"idPlayer":"34146370","strPlayer":"Martin Odegaard","strSport":"Soccer","strTeam":"Arsenal","idTeam":"133602","strNationality":"Norway","strPosition":"Midfielder"}
]}`

const defaultPlayerDetailJSON = `{"players":[
	{"idPlayer":"34145937","strPlayer":"Bukayo Saka","strSport":"Soccer","strTeam":"Arsenal","idTeam":"133602","strNationality":"England","strPosition":"Winger","dateBorn":"2001-09-05","strHeight":"1.78 m"}
]}`

const defaultSearchPlayersJSON = `{"player":[
	{"idPlayer":"34145937","strPlayer":"Bukayo Saka","strSport":"Soccer","strTeam":"Arsenal","strNationality":"England"},
	{"idPlayer":"34146370","strPlayer":"Martin Odegaard","strSport":"Soccer","strTeam":"Arsenal","strNationality":"Norway"},
	{"idPlayer":"99000001","strPlayer":"Aaron Judge","strSport":"Baseball","strTeam":"New York Yankees","strNationality":"United States"}
]}`

const defaultSearchTeamsJSON = `{"teams":[
	{"idTeam":"133602","strTeam":"Arsenal","strLeague":"English Premier League","idLeague":"4328"}
]}`

const defaultEventsJSON = `{"events":[
	{"idEvent":"1032723","strEvent":"Arsenal vs Liverpool","idLeague":"4328","strLeague":"English Premier League","strHomeTeam":"Arsenal","strAwayTeam":"Liverpool","intHomeScore":"3","intAwayScore":"1","dateEvent":"2026-08-22","strTime":"16:30:00","strVenue":"Emirates Stadium"},
	{"idEvent":"1032724","strEvent":"Chelsea vs Spurs","idLeague":"4328","strLeague":"English Premier League","strHomeTeam":"Chelsea","strAwayTeam":"Spurs","intHomeScore":"","intAwayScore":"","dateEvent":"2026-09-01","strTime":"15:00:00","strVenue":"Stamford Bridge"}
]}`

const defaultEventDetailJSON = `{"events":[
	{"idEvent":"1032723","strEvent":"Arsenal vs Liverpool","idLeague":"4328","strLeague":"English Premier League","strHomeTeam":"Arsenal","strAwayTeam":"Liverpool","intHomeScore":"3","intAwayScore":"1","dateEvent":"2026-08-22","strTime":"16:30:00","strVenue":"Emirates Stadium"}
]}`
