package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/footworks/footyscope/model"
)

// Typed wrappers over the raw key-value contract. Everything is stored as a
// JSON-encoded string under a fixed key.

type storedProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// SaveSession mirrors the in-memory session to storage: the bare token under
// one key, the profile JSON under another.
func SaveSession(ctx context.Context, s Store, session model.Session) error {
	if err := s.Set(ctx, KeyAuthToken, session.Token); err != nil {
		return err
	}
	u := session.User
	b, err := json.Marshal(storedProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    u.Gender,
		Image:     u.Image,
	})
	if err != nil {
		return fmt.Errorf("encode user data: %w", err)
	}
	return s.Set(ctx, KeyUserData, string(b))
}

// LoadSession restores a session from storage. A missing token means no
// session and is not an error. A token without a readable profile still
// counts as a session; the profile is simply empty.
func LoadSession(ctx context.Context, s Store) (*model.Session, error) {
	token, ok, err := s.Get(ctx, KeyAuthToken)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, nil
	}

	session := &model.Session{Token: token}
	raw, ok, err := s.Get(ctx, KeyUserData)
	if err != nil || !ok {
		return session, err
	}
	var p storedProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return session, nil
	}
	session.User = model.UserProfile{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
		Image:     p.Image,
	}
	return session, nil
}

// ClearSession removes both session keys. The first failure is returned but
// the second remove is still attempted.
func ClearSession(ctx context.Context, s Store) error {
	err1 := s.Remove(ctx, KeyAuthToken)
	err2 := s.Remove(ctx, KeyUserData)
	if err1 != nil {
		return err1
	}
	return err2
}

// LoadRegisteredUsers returns the demo account list, empty when absent or
// unreadable.
func LoadRegisteredUsers(ctx context.Context, s Store) ([]model.RegisteredUser, error) {
	raw, ok, err := s.Get(ctx, KeyRegisteredUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var users []model.RegisteredUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func SaveRegisteredUsers(ctx context.Context, s Store, users []model.RegisteredUser) error {
	b, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode registered users: %w", err)
	}
	return s.Set(ctx, KeyRegisteredUsers, string(b))
}

// SaveFavoriteIDs persists the favorite id list under the given key
// (football and venue favorites live under different keys).
func SaveFavoriteIDs(ctx context.Context, s Store, key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	return s.Set(ctx, key, string(b))
}

// LoadFavoriteIDs returns the persisted favorite ids, empty when absent or
// unreadable.
func LoadFavoriteIDs(ctx context.Context, s Store, key string) ([]string, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

// SaveTheme persists the dark-mode flag.
func SaveTheme(ctx context.Context, s Store, isDarkMode bool) error {
	b, _ := json.Marshal(isDarkMode)
	return s.Set(ctx, KeyThemeMode, string(b))
}

// LoadTheme returns the persisted flag; ok=false when nothing was saved yet.
func LoadTheme(ctx context.Context, s Store) (isDarkMode, ok bool, err error) {
	raw, ok, err := s.Get(ctx, KeyThemeMode)
	if err != nil || !ok {
		return false, false, err
	}
	if err := json.Unmarshal([]byte(raw), &isDarkMode); err != nil {
		return false, false, nil
	}
	return isDarkMode, true, nil
}
