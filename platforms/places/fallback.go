package places

import "github.com/footworks/footyscope/model"

// FallbackVenues is the bundled dataset used when the places provider is
// unavailable.
func FallbackVenues() []model.Venue {
	return []model.Venue{
		{
			ID:        "venue-1",
			Name:      "Riverside Basketball Courts",
			Address:   "475 Riverside Dr, New York, NY",
			Rating:    4.5,
			SportType: "Basketball",
			ImageURL:  "https://picsum.photos/seed/venue-1/400/300",
			Latitude:  40.8115,
			Longitude: -73.9626,
			OpenNow:   true,
		},
		{
			ID:         "venue-2",
			Name:       "Chelsea Piers Fitness",
			Address:    "62 Chelsea Piers, New York, NY",
			Rating:     4.3,
			SportType:  "Gym",
			ImageURL:   "https://picsum.photos/seed/venue-2/400/300",
			Latitude:   40.7466,
			Longitude:  -74.0086,
			OpenNow:    true,
			PriceLevel: 3,
		},
		{
			ID:        "venue-3",
			Name:      "East River Soccer Fields",
			Address:   "E 6th St &, FDR Dr, New York, NY",
			Rating:    4.1,
			SportType: "Soccer",
			ImageURL:  "https://picsum.photos/seed/venue-3/400/300",
			Latitude:  40.7235,
			Longitude: -73.9733,
		},
		{
			ID:         "venue-4",
			Name:       "Midtown Tennis Club",
			Address:    "341 8th Ave, New York, NY",
			Rating:     4.0,
			SportType:  "Tennis",
			ImageURL:   "https://picsum.photos/seed/venue-4/400/300",
			Latitude:   40.7479,
			Longitude:  -73.9973,
			OpenNow:    false,
			PriceLevel: 2,
		},
		{
			ID:        "venue-5",
			Name:      "McCarren Park Running Track",
			Address:   "776 Lorimer St, Brooklyn, NY",
			Rating:    4.6,
			SportType: "Running",
			ImageURL:  "https://picsum.photos/seed/venue-5/400/300",
			Latitude:  40.7203,
			Longitude: -73.9527,
			OpenNow:   true,
		},
		{
			ID:         "venue-6",
			Name:       "Brooklyn Bridge Park Courts",
			Address:    "334 Furman St, Brooklyn, NY",
			Rating:     4.7,
			SportType:  "Basketball",
			ImageURL:   "https://picsum.photos/seed/venue-6/400/300",
			Latitude:   40.7003,
			Longitude:  -73.9967,
			OpenNow:    true,
			PriceLevel: 0,
		},
	}
}
