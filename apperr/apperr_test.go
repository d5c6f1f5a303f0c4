package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindMatching(t *testing.T) {
	tests := map[string]struct {
		err      error
		sentinel *Error
		want     bool
	}{
		"network matches":      {err: Network("Login failed", nil), sentinel: ErrNetwork, want: true},
		"network vs storage":   {err: Network("Login failed", nil), sentinel: ErrStorage, want: false},
		"storage matches":      {err: Storage("set", errors.New("disk full")), sentinel: ErrStorage, want: true},
		"validation matches":   {err: Validation("Email is required"), sentinel: ErrValidation, want: true},
		"not found matches":    {err: NotFound("player"), sentinel: ErrNotFound, want: true},
		"wrapped still counts": {err: fmt.Errorf("thunk: %w", Network("Failed to fetch teams", nil)), sentinel: ErrNetwork, want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.sentinel); got != tc.want {
				t.Errorf("errors.Is = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network("Failed to fetch leagues", cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected the cause to be reachable through Unwrap")
	}
}

func TestMessage(t *testing.T) {
	tests := map[string]struct {
		err  error
		want string
	}{
		"apperr message": {err: Network("Invalid credentials", nil), want: "Invalid credentials"},
		"wrapped apperr": {err: fmt.Errorf("login: %w", Network("Invalid credentials", nil)), want: "Invalid credentials"},
		"plain error":    {err: errors.New("dial tcp: timeout"), want: "Something went wrong"},
		"nil-ish":        {err: errors.New(""), want: "Something went wrong"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Message(tc.err, "Something went wrong"); got != tc.want {
				t.Errorf("Message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := NotFound("player").Error(); got != "player not found" {
		t.Errorf("unexpected message: %q", got)
	}
}
