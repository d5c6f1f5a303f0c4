package store

import (
	"testing"

	"github.com/footworks/footyscope/model"
)

func TestFilterPlayers(t *testing.T) {
	pool := []model.Player{
		{ID: "1", Name: "Bukayo Saka", Nationality: "England", Team: "Arsenal"},
		{ID: "2", Name: "Martin Odegaard", Nationality: "Norway", Team: "Arsenal"},
		{ID: "3", Name: "Erling Haaland", Nationality: "Norway", Team: "Manchester City"},
	}

	tests := map[string]struct {
		query   string
		wantIDs []string
	}{
		"blank returns pool":    {query: "", wantIDs: []string{"1", "2", "3"}},
		"whitespace only":       {query: "   ", wantIDs: []string{"1", "2", "3"}},
		"name substring":        {query: "saka", wantIDs: []string{"1"}},
		"case insensitive":      {query: "HAALAND", wantIDs: []string{"3"}},
		"nationality":           {query: "norway", wantIDs: []string{"2", "3"}},
		"team":                  {query: "arsenal", wantIDs: []string{"1", "2"}},
		"no match":              {query: "zzz", wantIDs: []string{}},
		"partial across fields": {query: "man", wantIDs: []string{"3"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := FilterPlayers(pool, tc.query)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d results, got %d", len(tc.wantIDs), len(got))
			}
			for i, p := range got {
				if p.ID != tc.wantIDs[i] {
					t.Errorf("result %d: expected id %s, got %s", i, tc.wantIDs[i], p.ID)
				}
			}
		})
	}
}

func TestFilterVenues(t *testing.T) {
	venues := []model.Venue{
		{ID: "1", Name: "Downtown Hoops", Address: "12 Main St", SportType: "Basketball"},
		{ID: "2", Name: "Riverside Courts", Address: "8 River Rd", SportType: "Tennis"},
		{ID: "3", Name: "Main Street Gym", Address: "101 Oak Ave", SportType: "Basketball"},
	}

	tests := map[string]struct {
		query   string
		wantIDs []string
	}{
		"blank":      {query: "", wantIDs: []string{"1", "2", "3"}},
		"name":       {query: "hoops", wantIDs: []string{"1"}},
		"address":    {query: "river rd", wantIDs: []string{"2"}},
		"sport type": {query: "basketball", wantIDs: []string{"1", "3"}},
		"no match":   {query: "swimming", wantIDs: []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := FilterVenues(venues, tc.query)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("expected %d results, got %d", len(tc.wantIDs), len(got))
			}
			for i, v := range got {
				if v.ID != tc.wantIDs[i] {
					t.Errorf("result %d: expected id %s, got %s", i, tc.wantIDs[i], v.ID)
				}
			}
		})
	}
}
