package store

import (
	"strings"

	"github.com/footworks/footyscope/model"
)

// FilterPlayers is the client-side search: a case-insensitive substring
// match over name, nationality, and team, recomputed on every keystroke
// against the already-fetched pool. A blank query returns the whole pool.
func FilterPlayers(pool []model.Player, query string) []model.Player {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return pool
	}
	out := []model.Player{}
	for _, p := range pool {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Nationality), q) ||
			strings.Contains(strings.ToLower(p.Team), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterVenues is the venue-list variant of client-side search, matching
// name, address, and sport type.
func FilterVenues(venues []model.Venue, query string) []model.Venue {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return venues
	}
	out := []model.Venue{}
	for _, v := range venues {
		if strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Address), q) ||
			strings.Contains(strings.ToLower(v.SportType), q) {
			out = append(out, v)
		}
	}
	return out
}
