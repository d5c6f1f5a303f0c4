package store

import (
	"context"

	"github.com/footworks/footyscope/storage"
)

func reduceTheme(s ThemeState, a Action) (ThemeState, []Command) {
	switch a := a.(type) {
	case themeToggled:
		s.IsDarkMode = !s.IsDarkMode
		return s, []Command{saveThemeCommand{isDarkMode: s.IsDarkMode}}
	case themeSet:
		// Hydration path: set without persisting.
		s.IsDarkMode = a.isDarkMode
		return s, nil
	}
	return s, nil
}

type saveThemeCommand struct {
	isDarkMode bool
}

func (c saveThemeCommand) Run(ctx context.Context, env *Env) error {
	return storage.SaveTheme(ctx, env.LPS, c.isDarkMode)
}

// ToggleTheme flips dark mode and persists the new value.
func (s *Store) ToggleTheme() {
	s.Dispatch(themeToggled{})
}

// LoadThemeFromStorage hydrates the theme slice at startup. When nothing
// was ever saved the variant default stands.
func (s *Store) LoadThemeFromStorage(ctx context.Context) {
	isDarkMode, ok, err := storage.LoadTheme(ctx, s.lps)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load theme")
		return
	}
	if !ok {
		return
	}
	s.Dispatch(themeSet{isDarkMode: isDarkMode})
}
