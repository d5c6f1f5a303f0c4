package model

const SportSoccer = "Soccer"

// League is a competition summary as returned by the sports-statistics
// provider. Detail fields are only populated by a by-id lookup.
type League struct {
	ID        string
	Name      string
	Sport     string
	AltName   string
	Country   string
	Badge     string
	Formed    string
	Gender    string
	Website   string
	Overview  string
	TrophyURL string
}

type Team struct {
	ID       string
	Name     string
	League   string
	LeagueID string
	Stadium  string
	Country  string
	Formed   string
	Badge    string
	Overview string
	Website  string
}

type Player struct {
	ID          string
	Name        string
	Sport       string
	Team        string
	TeamID      string
	Nationality string
	Position    string
	BirthDate   string
	Height      string
	Weight      string
	Thumb       string
	Overview    string
}

// Event is a single match, upcoming or played. Scores are empty strings for
// fixtures that have not been played yet.
type Event struct {
	ID        string
	Name      string
	LeagueID  string
	League    string
	Season    string
	HomeTeam  string
	AwayTeam  string
	HomeScore string
	AwayScore string
	Date      string
	Time      string
	Venue     string
	Thumb     string
}

// Played reports whether the event has a recorded result.
func (e *Event) Played() bool {
	return e.HomeScore != "" || e.AwayScore != ""
}
