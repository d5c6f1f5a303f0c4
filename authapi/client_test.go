package authapi

import (
	"context"
	"errors"
	"testing"

	"github.com/footworks/footyscope/apperr"
	"github.com/footworks/footyscope/testutils"
)

func TestLogin_success(t *testing.T) {
	fake := testutils.NewFakeAuthServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	session, err := c.Login(context.Background(), testutils.FakeAuthUsername, testutils.FakeAuthPassword)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if session.Token != testutils.FakeAuthToken {
		t.Errorf("unexpected token: %q", session.Token)
	}
	if session.User.Username != "emilys" || session.User.FirstName != "Emily" {
		t.Errorf("unexpected profile: %+v", session.User)
	}
	if session.User.ID != 1 {
		t.Errorf("unexpected id: %d", session.User.ID)
	}
}

func TestLogin_badCredentials(t *testing.T) {
	fake := testutils.NewFakeAuthServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	_, err := c.Login(context.Background(), "emilys", "wrong")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, apperr.ErrNetwork) {
		t.Errorf("expected a network error, got %v", err)
	}
	// The provider's message is the UI's error text.
	if err.Error() != "Invalid credentials" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestLogin_unreachableProvider(t *testing.T) {
	c := NewForTest("http://127.0.0.1:1/auth")
	_, err := c.Login(context.Background(), "emilys", "emilyspass")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, apperr.ErrNetwork) {
		t.Errorf("expected a network error, got %v", err)
	}
	if err.Error() == "" {
		t.Errorf("message must be displayable, got empty string")
	}
}
