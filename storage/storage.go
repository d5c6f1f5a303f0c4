// Package storage is the local persistent store: a durable key-value table
// in an embedded sqlite database. It holds the session token, the cached
// user profile, the demo registered-user list, favorite ids, and the theme
// flag. Catalog and news data never land here.
package storage

import "context"

// Persisted keys. The football and venue variants keep separate favorite
// lists.
const (
	KeyAuthToken         = "authToken"
	KeyUserData          = "userData"
	KeyRegisteredUsers   = "registeredUsers"
	KeyFootballFavorites = "@favorites"
	KeyThemeMode         = "@theme_mode"
	KeyVenueFavorites    = "@courtfinder_favorites"
)

// Store is the key-value contract. Get on a missing key returns ok=false
// and no error. Writes are best-effort from the caller's point of view:
// the domain store logs and swallows failures rather than surfacing them.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
