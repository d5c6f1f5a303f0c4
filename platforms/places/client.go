// Package places finds nearby sports venues. With no API key configured, or
// on any provider failure, it serves the bundled dataset so the venue list
// is never empty.
package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/footworks/footyscope/model"
)

const DefaultURL = "https://maps.googleapis.com/maps/api"

// Search center and radius are fixed; the app has no location permission
// flow.
const (
	defaultLocation = "40.7128,-74.0060"
	defaultRadius   = "5000"
)

type Client interface {
	NearbyVenues(ctx context.Context) []model.Venue
}

type client struct {
	url        string
	key        string
	httpClient *http.Client
	log        zerolog.Logger
}

func New(key string, log zerolog.Logger) (Client, error) {
	return &client{
		url: DefaultURL,
		key: key,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}, nil
}

func NewForTest(url, key string) Client {
	return &client{
		url:        url,
		key:        key,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
}

func (c *client) NearbyVenues(ctx context.Context) []model.Venue {
	if c.key == "" {
		return FallbackVenues()
	}
	venues, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("places provider failed, serving fallback venues")
		return FallbackVenues()
	}
	return venues
}

func (c *client) fetch(ctx context.Context) ([]model.Venue, error) {
	q := url.Values{}
	q.Set("location", defaultLocation)
	q.Set("radius", defaultRadius)
	q.Set("type", "gym|stadium")
	q.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/place/nearbysearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating places http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending places http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from places provider: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading places response: %w", err)
	}

	results := gjson.GetBytes(body, "results")
	if !results.Exists() {
		return nil, fmt.Errorf("places response has no results field")
	}

	venues := []model.Venue{}
	for i, r := range results.Array() {
		id := r.Get("place_id").String()
		if id == "" {
			id = fmt.Sprintf("place-%d", i)
		}
		imageURL := fmt.Sprintf("https://picsum.photos/seed/%s/400/300", id)
		if photo := r.Get("photos.0.photo_reference").String(); photo != "" {
			imageURL = fmt.Sprintf("%s/place/photo?maxwidth=400&photoreference=%s&key=%s", c.url, photo, c.key)
		}
		venues = append(venues, model.Venue{
			ID:         id,
			Name:       r.Get("name").String(),
			Address:    r.Get("vicinity").String(),
			Rating:     r.Get("rating").Float(),
			SportType:  "Sports Facility",
			ImageURL:   imageURL,
			Latitude:   r.Get("geometry.location.lat").Float(),
			Longitude:  r.Get("geometry.location.lng").Float(),
			OpenNow:    r.Get("opening_hours.open_now").Bool(),
			PriceLevel: int(r.Get("price_level").Int()),
		})
	}
	return venues, nil
}
