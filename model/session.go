package model

import (
	"strconv"
	"time"
)

// UserProfile is the normalized shape of whoever satisfied the login: the
// remote auth provider or the local demo registration fallback. ID is stable
// for the lifetime of the session.
type UserProfile struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Gender    string
	Image     string
}

func (u *UserProfile) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Session pairs an auth token with the profile it belongs to. It is held in
// the domain store and mirrored to local storage; authenticated means
// exactly "a session exists".
type Session struct {
	Token string
	User  UserProfile
}

// RegisteredUser is a demo-only local account appended at registration time
// and consulted by login before the remote provider. Cleartext and
// device-local; not a real credential store.
type RegisteredUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// MockToken mints the token used for sessions backed by a locally
// registered user.
func MockToken(now time.Time) string {
	return "mock_token_" + strconv.FormatInt(now.UnixMilli(), 10)
}
