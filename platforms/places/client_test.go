package places

import (
	"context"
	"testing"

	"github.com/footworks/footyscope/testutils"
)

func TestNearbyVenues_noKeyServesFallback(t *testing.T) {
	c := NewForTest("http://127.0.0.1:1", "")

	venues := c.NearbyVenues(context.Background())
	if len(venues) != 6 {
		t.Fatalf("expected the 6 fallback venues, got %d", len(venues))
	}
	if venues[0].ID != "venue-1" {
		t.Errorf("unexpected first venue: %+v", venues[0])
	}
}

func TestNearbyVenues_providerSuccess(t *testing.T) {
	fake := testutils.NewFakePlacesServer()
	defer fake.Close()

	c := NewForTest(fake.URL(), "test-key")
	venues := c.NearbyVenues(context.Background())
	if len(venues) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(venues))
	}

	first := venues[0]
	if first.ID != "remote-1" || first.Name != "Downtown Hoops Center" {
		t.Errorf("unexpected venue: %+v", first)
	}
	if !first.OpenNow || first.PriceLevel != 2 {
		t.Errorf("open/price not mapped: %+v", first)
	}
	if first.Latitude != 40.71 || first.Longitude != -74.0 {
		t.Errorf("geometry not mapped: %+v", first)
	}
	// A photo reference turns into a provider photo URL.
	if want := fake.URL() + "/place/photo?maxwidth=400&photoreference=photo-ref-1&key=test-key"; first.ImageURL != want {
		t.Errorf("expected photo URL %q, got %q", want, first.ImageURL)
	}

	// A result without a place_id gets a synthetic positional id and a
	// placeholder image.
	second := venues[1]
	if second.ID != "place-1" {
		t.Errorf("expected synthetic id place-1, got %q", second.ID)
	}
	if want := "https://picsum.photos/seed/place-1/400/300"; second.ImageURL != want {
		t.Errorf("expected placeholder image %q, got %q", want, second.ImageURL)
	}
}

func TestNearbyVenues_providerFailureServesFallback(t *testing.T) {
	fake := testutils.NewFakePlacesServer()
	defer fake.Close()
	fake.Fail()

	c := NewForTest(fake.URL(), "test-key")
	venues := c.NearbyVenues(context.Background())
	if len(venues) != 6 {
		t.Fatalf("expected the fallback list, got %d venues", len(venues))
	}
}
