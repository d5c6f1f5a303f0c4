package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/footworks/footyscope/apperr"
	"github.com/footworks/footyscope/authapi"
	"github.com/footworks/footyscope/authapi/mockauth"
	"github.com/footworks/footyscope/model"
	"github.com/footworks/footyscope/storage"
	"github.com/footworks/footyscope/store"
)

func newAuthTestStore(t *testing.T, auth authapi.Client, users ...model.RegisteredUser) *store.Store {
	t.Helper()

	lps, err := storage.NewSQLStore(":memory:")
	if err != nil {
		t.Fatalf("error creating test storage: %v", err)
	}
	t.Cleanup(func() { lps.Close() })
	if len(users) > 0 {
		if err := storage.SaveRegisteredUsers(context.Background(), lps, users); err != nil {
			t.Fatalf("seed users: %v", err)
		}
	}

	st := store.New(store.FootyScopeConfig(), store.Deps{
		Clock: clock.NewMock(),
		Log:   zerolog.Nop(),
		LPS:   lps,
		Auth:  auth,
	})
	t.Cleanup(st.Flush)
	return st
}

func TestAuthScreens_loginSignsIn(t *testing.T) {
	st := newAuthTestStore(t, &mockauth.Client{},
		model.RegisteredUser{Username: "localfan", Password: "sixchars", Email: "l@example.com"})

	p := NewPrompter(strings.NewReader("login\nlocalfan\nsixchars\n"))
	quit := AuthScreens(context.Background(), st, "FootyScope", p)

	if quit {
		t.Errorf("a successful login is not a quit")
	}
	if !st.State().Auth.IsAuthenticated {
		t.Fatalf("expected an authenticated state, error=%q", st.State().Auth.Error)
	}
}

func TestAuthScreens_registerSignsIn(t *testing.T) {
	st := newAuthTestStore(t, &mockauth.Client{})

	p := NewPrompter(strings.NewReader("register\nnewfan\nnewfan@example.com\nabcdef\nabcdef\n"))
	quit := AuthScreens(context.Background(), st, "CourtFinder", p)

	if quit {
		t.Errorf("a successful registration is not a quit")
	}
	if !st.State().Auth.IsAuthenticated {
		t.Fatalf("expected an authenticated state, error=%q", st.State().Auth.Error)
	}
}

func TestAuthScreens_quit(t *testing.T) {
	st := newAuthTestStore(t, &mockauth.Client{})

	p := NewPrompter(strings.NewReader("quit\n"))
	if quit := AuthScreens(context.Background(), st, "FootyScope", p); !quit {
		t.Errorf("expected quit to be reported")
	}
	if st.State().Auth.IsAuthenticated {
		t.Errorf("quit must not authenticate")
	}
}

func TestAuthScreens_failedLoginKeepsPrompting(t *testing.T) {
	auth := &mockauth.Client{}
	auth.On("Login", mock.Anything, "nobody", "wrong").
		Return(nil, apperr.Network("Invalid credentials", nil))

	st := newAuthTestStore(t, auth)

	// The failed attempt loops back to the prompt; input then ends.
	p := NewPrompter(strings.NewReader("login\nnobody\nwrong\n"))
	quit := AuthScreens(context.Background(), st, "FootyScope", p)

	if quit {
		t.Errorf("input ending is not a quit")
	}
	if st.State().Auth.IsAuthenticated {
		t.Errorf("failed login must not authenticate")
	}
	if st.State().Auth.Error != "Invalid credentials" {
		t.Errorf("unexpected error: %q", st.State().Auth.Error)
	}
	auth.AssertExpectations(t)
}
