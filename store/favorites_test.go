package store

import (
	"context"
	"testing"
)

func TestToggleFavorite_addRemove(t *testing.T) {
	s := newTestStore(t, FootyScopeConfig(), testDeps{})

	s.ToggleFavorite("player-1")
	if !s.IsFavorite("player-1") {
		t.Fatalf("first toggle should add")
	}

	s.ToggleFavorite("player-1")
	if s.IsFavorite("player-1") {
		t.Fatalf("second toggle should remove")
	}
	if len(s.State().Favorites.IDs) != 0 {
		t.Errorf("expected an empty set, got %v", s.State().Favorites.IDs)
	}
}

func TestToggleFavorite_preservesOrder(t *testing.T) {
	s := newTestStore(t, FootyScopeConfig(), testDeps{})

	s.ToggleFavorite("a")
	s.ToggleFavorite("b")
	s.ToggleFavorite("c")
	s.ToggleFavorite("b")

	ids := s.State().Favorites.IDs
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Errorf("expected [a c], got %v", ids)
	}
}

func TestFavorites_surviveRestart(t *testing.T) {
	lps := newMemoryStorage(t)

	s := newTestStore(t, FootyScopeConfig(), testDeps{lps: lps})
	s.ToggleFavorite("player-1")
	s.ToggleFavorite("player-2")
	s.Flush()

	// A fresh store over the same storage sees the persisted set.
	s2 := newTestStore(t, FootyScopeConfig(), testDeps{lps: lps})
	s2.LoadFavoritesFromStorage(context.Background())

	favs := s2.State().Favorites
	if !favs.Has("player-1") || !favs.Has("player-2") {
		t.Errorf("favorites not restored: %v", favs.IDs)
	}
}

func TestFavorites_keysAreIndependentPerVariant(t *testing.T) {
	lps := newMemoryStorage(t)

	footy := newTestStore(t, FootyScopeConfig(), testDeps{lps: lps})
	footy.ToggleFavorite("player-1")
	footy.Flush()

	// The court finder variant writes under its own key, so it does not
	// see football favorites even on shared storage.
	court := newTestStore(t, CourtFinderConfig(), testDeps{lps: lps})
	court.LoadFavoritesFromStorage(context.Background())
	if court.State().Favorites.Has("player-1") {
		t.Errorf("variants must not share favorites")
	}
}

func TestFavorites_surviveLogout(t *testing.T) {
	s := newTestStore(t, FootyScopeConfig(), testDeps{})

	s.ToggleFavorite("player-1")
	s.Logout()

	if !s.IsFavorite("player-1") {
		t.Errorf("favorites should survive logout")
	}
}
