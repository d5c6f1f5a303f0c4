package model

// Venue is a nearby sports facility from the places provider or the bundled
// fallback dataset.
type Venue struct {
	ID         string
	Name       string
	Address    string
	Rating     float64
	SportType  string
	ImageURL   string
	Latitude   float64
	Longitude  float64
	OpenNow    bool
	PriceLevel int
}
