// Conversions from the provider's wire shapes into model records. The
// provider is loosely typed: numeric fields arrive as strings, absent fields
// as null, and empty result sets as either a null array or a missing key, so
// everything goes through gjson rather than struct decoding.
package internal

import (
	"github.com/tidwall/gjson"

	"github.com/footworks/footyscope/model"
)

func LeagueFromJSON(r gjson.Result) model.League {
	return model.League{
		ID:        r.Get("idLeague").String(),
		Name:      r.Get("strLeague").String(),
		Sport:     r.Get("strSport").String(),
		AltName:   r.Get("strLeagueAlternate").String(),
		Country:   r.Get("strCountry").String(),
		Badge:     r.Get("strBadge").String(),
		Formed:    r.Get("intFormedYear").String(),
		Gender:    r.Get("strGender").String(),
		Website:   r.Get("strWebsite").String(),
		Overview:  r.Get("strDescriptionEN").String(),
		TrophyURL: r.Get("strTrophy").String(),
	}
}

func TeamFromJSON(r gjson.Result) model.Team {
	badge := r.Get("strBadge").String()
	if badge == "" {
		badge = r.Get("strTeamBadge").String()
	}
	return model.Team{
		ID:       r.Get("idTeam").String(),
		Name:     r.Get("strTeam").String(),
		League:   r.Get("strLeague").String(),
		LeagueID: r.Get("idLeague").String(),
		Stadium:  r.Get("strStadium").String(),
		Country:  r.Get("strCountry").String(),
		Formed:   r.Get("intFormedYear").String(),
		Badge:    badge,
		Overview: r.Get("strDescriptionEN").String(),
		Website:  r.Get("strWebsite").String(),
	}
}

func PlayerFromJSON(r gjson.Result) model.Player {
	return model.Player{
		ID:          r.Get("idPlayer").String(),
		Name:        r.Get("strPlayer").String(),
		Sport:       r.Get("strSport").String(),
		Team:        r.Get("strTeam").String(),
		TeamID:      r.Get("idTeam").String(),
		Nationality: r.Get("strNationality").String(),
		Position:    r.Get("strPosition").String(),
		BirthDate:   r.Get("dateBorn").String(),
		Height:      r.Get("strHeight").String(),
		Weight:      r.Get("strWeight").String(),
		Thumb:       r.Get("strThumb").String(),
		Overview:    r.Get("strDescriptionEN").String(),
	}
}

func EventFromJSON(r gjson.Result) model.Event {
	return model.Event{
		ID:        r.Get("idEvent").String(),
		Name:      r.Get("strEvent").String(),
		LeagueID:  r.Get("idLeague").String(),
		League:    r.Get("strLeague").String(),
		Season:    r.Get("strSeason").String(),
		HomeTeam:  r.Get("strHomeTeam").String(),
		AwayTeam:  r.Get("strAwayTeam").String(),
		HomeScore: r.Get("intHomeScore").String(),
		AwayScore: r.Get("intAwayScore").String(),
		Date:      r.Get("dateEvent").String(),
		Time:      r.Get("strTime").String(),
		Venue:     r.Get("strVenue").String(),
		Thumb:     r.Get("strThumb").String(),
	}
}
