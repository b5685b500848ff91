package guard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"astro-observer/internal/client/api"
	"astro-observer/internal/client/session"
)

func TestRequireAuthWhileLoading(t *testing.T) {
	store := session.NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	s := session.New(api.NewClient("http://127.0.0.1:1", store.Read), store)

	// Initialize has not run yet: the guard must refuse, not fall through.
	if err := RequireAuth(s); !errors.Is(err, ErrSessionLoading) {
		t.Errorf("RequireAuth() = %v, want ErrSessionLoading", err)
	}
}

func TestRequireAuthAnonymous(t *testing.T) {
	store := session.NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	s := session.New(api.NewClient("http://127.0.0.1:1", store.Read), store)
	s.Initialize(context.Background())

	if err := RequireAuth(s); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("RequireAuth() = %v, want ErrLoginRequired", err)
	}
}

func TestRequireAuthAuthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","user":{"id":"u1","username":"stella"}}`))
	}))
	defer srv.Close()

	store := session.NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	s := session.New(api.NewClient(srv.URL, store.Read), store)
	s.Initialize(context.Background())

	if _, err := s.Login(context.Background(), "stella", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := RequireAuth(s); err != nil {
		t.Errorf("RequireAuth() = %v, want nil", err)
	}
}
