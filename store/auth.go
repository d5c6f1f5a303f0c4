package store

import (
	"context"

	"github.com/footworks/footyscope/apperr"
	"github.com/footworks/footyscope/model"
	"github.com/footworks/footyscope/storage"
)

func reduceAuth(s AuthState, a Action) (AuthState, []Command) {
	switch a := a.(type) {
	case authStarted:
		s.Loading = true
		s.Error = ""
		return s, nil
	case authSucceeded:
		session := a.session
		s.Loading = false
		s.Session = &session
		s.IsAuthenticated = true
		s.Error = ""
		if a.persist {
			return s, []Command{saveSessionCommand{session: session}}
		}
		return s, nil
	case authFailed:
		s.Loading = false
		s.Error = a.msg
		return s, nil
	case loggedOut:
		return AuthState{}, []Command{clearSessionCommand{}}
	}
	return s, nil
}

type saveSessionCommand struct {
	session model.Session
}

func (c saveSessionCommand) Run(ctx context.Context, env *Env) error {
	return storage.SaveSession(ctx, env.LPS, c.session)
}

type clearSessionCommand struct{}

func (clearSessionCommand) Run(ctx context.Context, env *Env) error {
	return storage.ClearSession(ctx, env.LPS)
}

// Login signs the user in. Locally registered demo accounts are checked
// first; only on a miss does the remote provider get called. Failures land
// in the auth slice's Error field, never in a return value.
func (s *Store) Login(ctx context.Context, username, password string) {
	s.Dispatch(authStarted{})

	users, err := storage.LoadRegisteredUsers(ctx, s.lps)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not read registered users, falling through to provider")
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			now := s.clock.Now()
			s.Dispatch(authSucceeded{
				session: model.Session{
					Token: model.MockToken(now),
					User: model.UserProfile{
						ID:        now.UnixMilli(),
						Username:  u.Username,
						Email:     u.Email,
						FirstName: u.Username,
					},
				},
				persist: true,
			})
			return
		}
	}

	session, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.Dispatch(authFailed{msg: apperr.Message(err, "Login failed")})
		return
	}
	s.Dispatch(authSucceeded{session: *session, persist: true})
}

// Register creates a demo-only local account and signs it in. Validation
// failures surface before anything is persisted or fetched. Registration
// never calls a remote endpoint.
func (s *Store) Register(ctx context.Context, username, email, password, confirmPassword string) {
	if msg := registrationError(username, email, password, confirmPassword); msg != "" {
		s.Dispatch(authFailed{msg: msg})
		return
	}

	users, err := storage.LoadRegisteredUsers(ctx, s.lps)
	if err != nil {
		s.Dispatch(authFailed{msg: "Registration failed"})
		return
	}
	for _, u := range users {
		if u.Username == username || u.Email == email {
			s.Dispatch(authFailed{msg: "Username or email already exists"})
			return
		}
	}

	users = append(users, model.RegisteredUser{Username: username, Password: password, Email: email})
	if err := storage.SaveRegisteredUsers(ctx, s.lps, users); err != nil {
		s.Dispatch(authFailed{msg: "Registration failed"})
		return
	}

	// Registration signs the new account in directly.
	s.Dispatch(authStarted{})
	now := s.clock.Now()
	s.Dispatch(authSucceeded{
		session: model.Session{
			Token: model.MockToken(now),
			User: model.UserProfile{
				ID:        now.UnixMilli(),
				Username:  username,
				Email:     email,
				FirstName: username,
			},
		},
		persist: true,
	})
}

func registrationError(username, email, password, confirmPassword string) string {
	for _, check := range []struct{ value, field string }{
		{username, "Username"},
		{email, "Email"},
		{password, "Password"},
	} {
		if msg := model.ValidateRequired(check.value, check.field); msg != "" {
			return msg
		}
	}
	if msg := model.ValidateUsername(username); msg != "" {
		return msg
	}
	if !model.ValidateEmail(email) {
		return "Please enter a valid email address"
	}
	if msg := model.ValidatePassword(password); msg != "" {
		return msg
	}
	if password != confirmPassword {
		return "Passwords do not match"
	}
	return ""
}

// Logout clears the session from the store and from local storage.
func (s *Store) Logout() {
	s.Dispatch(loggedOut{})
}

// CheckAuthStatus restores a persisted session at startup. A stored token
// is trusted without revalidation against the provider.
func (s *Store) CheckAuthStatus(ctx context.Context) {
	session, err := storage.LoadSession(ctx, s.lps)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not restore session")
		return
	}
	if session == nil {
		return
	}
	s.Dispatch(authSucceeded{session: *session, persist: false})
}
