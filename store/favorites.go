package store

import (
	"context"

	"github.com/footworks/footyscope/storage"
)

func reduceFavorites(s FavoritesState, a Action) (FavoritesState, []Command) {
	switch a := a.(type) {
	case favoriteToggled:
		ids := make([]string, 0, len(s.IDs)+1)
		removed := false
		for _, id := range s.IDs {
			if id == a.id {
				removed = true
				continue
			}
			ids = append(ids, id)
		}
		if !removed {
			ids = append(ids, a.id)
		}
		s.IDs = ids
		return s, []Command{saveFavoritesCommand{ids: ids}}
	case favoritesLoaded:
		s.IDs = a.ids
		return s, nil
	case loggedOut:
		// Favorites survive logout; nothing to do. Kept explicit so the
		// choice is visible.
		return s, nil
	}
	return s, nil
}

type saveFavoritesCommand struct {
	ids []string
}

func (c saveFavoritesCommand) Run(ctx context.Context, env *Env) error {
	return storage.SaveFavoriteIDs(ctx, env.LPS, env.FavoritesKey, c.ids)
}

// ToggleFavorite adds the id to the favorites set, or removes it when
// already present. The new set is persisted after the transition commits.
func (s *Store) ToggleFavorite(id string) {
	s.Dispatch(favoriteToggled{id: id})
}

// IsFavorite reports whether the id is currently favorited.
func (s *Store) IsFavorite(id string) bool {
	return s.State().Favorites.Has(id)
}

// LoadFavoritesFromStorage hydrates the favorites slice at startup without
// writing anything back.
func (s *Store) LoadFavoritesFromStorage(ctx context.Context) {
	ids, err := storage.LoadFavoriteIDs(ctx, s.lps, s.cfg.FavoritesKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load favorites")
		return
	}
	s.Dispatch(favoritesLoaded{ids: ids})
}
