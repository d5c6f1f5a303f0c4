package store

import (
	"context"
	"testing"
	"time"

	"github.com/footworks/footyscope/model"
)

type stubPlaces struct {
	venues []model.Venue
}

func (s stubPlaces) NearbyVenues(context.Context) []model.Venue { return s.venues }

type stubNews struct {
	articles []model.NewsArticle
}

func (s stubNews) Headlines(_ context.Context, pageSize int) []model.NewsArticle {
	if len(s.articles) > pageSize {
		return s.articles[:pageSize]
	}
	return s.articles
}

func TestFetchVenues(t *testing.T) {
	s := newTestStore(t, CourtFinderConfig(), testDeps{places: stubPlaces{venues: []model.Venue{
		{ID: "venue-1", Name: "Downtown Hoops"},
		{ID: "venue-2", Name: "Riverside Courts"},
	}}})

	s.FetchVenues(context.Background())

	v := s.State().Venues
	if v.Loading {
		t.Errorf("loading should be false")
	}
	if len(v.Items) != 2 || v.Items[0].ID != "venue-1" {
		t.Errorf("unexpected venues: %+v", v.Items)
	}
}

func TestVenuesReducer_discardsStaleLoad(t *testing.T) {
	s := newTestStore(t, CourtFinderConfig(), testDeps{})

	s.Dispatch(venuesPending{gen: 1})
	s.Dispatch(venuesPending{gen: 2})
	s.Dispatch(venuesLoaded{gen: 2, items: []model.Venue{{ID: "new"}}})
	s.Dispatch(venuesLoaded{gen: 1, items: []model.Venue{{ID: "old"}}})

	v := s.State().Venues
	if len(v.Items) != 1 || v.Items[0].ID != "new" {
		t.Errorf("stale load applied: %+v", v.Items)
	}
}

func TestVenuesReducer_pendingsArrivingOutOfOrder(t *testing.T) {
	s := newTestStore(t, CourtFinderConfig(), testDeps{})

	s.Dispatch(venuesPending{gen: 2})
	s.Dispatch(venuesPending{gen: 1})
	s.Dispatch(venuesLoaded{gen: 2, items: []model.Venue{{ID: "fresh"}}})
	s.Dispatch(venuesLoaded{gen: 1, items: []model.Venue{{ID: "stale"}}})

	v := s.State().Venues
	if len(v.Items) != 1 || v.Items[0].ID != "fresh" {
		t.Fatalf("stale load applied: %+v", v.Items)
	}
	if v.Loading {
		t.Errorf("late stale pending must not re-enter loading")
	}
}

func TestFetchNews(t *testing.T) {
	published := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	s := newTestStore(t, FootyScopeConfig(), testDeps{news: stubNews{articles: []model.NewsArticle{
		{Title: "Headline One", PublishedAt: published},
		{Title: "Headline Two", PublishedAt: published},
		{Title: "Headline Three", PublishedAt: published},
	}}})

	s.FetchNews(context.Background(), 2)

	n := s.State().News
	if n.Loading {
		t.Errorf("loading should be false")
	}
	if len(n.Articles) != 2 || n.Articles[0].Title != "Headline One" {
		t.Errorf("unexpected articles: %+v", n.Articles)
	}
}
