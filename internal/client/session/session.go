package session

import (
	"context"
	"sync"
	"time"

	"astro-observer/internal/client/api"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the client-side authentication state: who is signed in, whether
// the stored credential has been checked yet, and the credential itself.
type Session struct {
	mu sync.RWMutex

	api   *api.Client
	creds *CredentialStore

	user          *api.User
	authenticated bool
	loading       bool
}

func New(apiClient *api.Client, creds *CredentialStore) *Session {
	return &Session{
		api:     apiClient,
		creds:   creds,
		loading: true,
	}
}

// Initialize resolves the stored credential into a definite state: either a
// verified user or anonymous. Until it returns, Loading() reports true and
// guarded commands must not run.
func (s *Session) Initialize(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token := s.creds.Read()
	if token == "" {
		return
	}

	// A token that is expired by its own exp claim gets demoted locally,
	// without a network round trip.
	if tokenExpired(token) {
		s.creds.Clear()
		return
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		// The server rejected or was unreachable with a bad credential
		// outcome either way: treat the stored token as dead.
		s.creds.Clear()
		return
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.mu.Unlock()
}

func (s *Session) Login(ctx context.Context, username, password string) (*api.User, error) {
	token, user, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := s.creds.Write(token); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.mu.Unlock()
	return user, nil
}

func (s *Session) Register(ctx context.Context, username, email, password, nickname string) (*api.User, error) {
	return s.api.Register(ctx, username, email, password, nickname)
}

// Logout drops the credential and returns the session to anonymous. It is
// purely local; the token simply ages out server side.
func (s *Session) Logout() {
	s.creds.Clear()

	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
}

func (s *Session) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// tokenExpired checks the exp claim without verifying the signature; the
// server remains the authority, this only avoids a doomed request.
func tokenExpired(tokenStr string) bool {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
