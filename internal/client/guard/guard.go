package guard

import (
	"errors"

	"astro-observer/internal/client/session"
)

var (
	// ErrSessionLoading means the stored credential has not been resolved
	// yet; callers must wait rather than guess.
	ErrSessionLoading = errors.New("session is still being restored")

	ErrLoginRequired = errors.New("you need to log in first")
)

// RequireAuth gates a protected operation on a settled, authenticated
// session. While the session is loading the outcome is unknown, so the
// guard refuses rather than letting the operation race the auth check.
func RequireAuth(s *session.Session) error {
	if s.Loading() {
		return ErrSessionLoading
	}
	if !s.IsAuthenticated() {
		return ErrLoginRequired
	}
	return nil
}
