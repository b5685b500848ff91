package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"astro-observer/internal/client/api"

	"github.com/golang-jwt/jwt/v5"
)

func newStore(t *testing.T) *CredentialStore {
	t.Helper()
	return NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "8d44e1d8-4aa8-4a97-9a2e-5d0d3a2c9f10",
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestCredentialStoreRoundtrip(t *testing.T) {
	store := newStore(t)

	if got := store.Read(); got != "" {
		t.Errorf("Read() on missing file = %q, want empty", got)
	}
	if err := store.Write("tok-123"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := store.Read(); got != "tok-123" {
		t.Errorf("Read() = %q, want tok-123", got)
	}
	store.Clear()
	if got := store.Read(); got != "" {
		t.Errorf("Read() after Clear() = %q, want empty", got)
	}
}

func TestInitializeWithoutTokenIsAnonymous(t *testing.T) {
	store := newStore(t)
	client := api.NewClient("http://127.0.0.1:1", store.Read)
	s := New(client, store)

	if !s.Loading() {
		t.Fatal("Loading() = false before Initialize, want true")
	}

	s.Initialize(context.Background())

	if s.Loading() {
		t.Error("Loading() = true after Initialize, want false")
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true, want false")
	}
	if s.User() != nil {
		t.Error("User() != nil for anonymous session")
	}
}

func TestInitializeRestoresValidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got == "" {
			t.Error("missing Authorization header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":"u1","username":"stella","email":"s@example.com","nickname":"Stella"}}`))
	}))
	defer srv.Close()

	store := newStore(t)
	store.Write(signedToken(t, time.Now().Add(time.Hour)))

	s := New(api.NewClient(srv.URL, store.Read), store)
	s.Initialize(context.Background())

	if !s.IsAuthenticated() {
		t.Fatal("IsAuthenticated() = false, want true")
	}
	if s.User().Username != "stella" {
		t.Errorf("User().Username = %q, want stella", s.User().Username)
	}
}

func TestInitializeExpiredTokenSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be contacted for an expired token")
	}))
	defer srv.Close()

	store := newStore(t)
	store.Write(signedToken(t, time.Now().Add(-time.Hour)))

	s := New(api.NewClient(srv.URL, store.Read), store)
	s.Initialize(context.Background())

	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true for expired token")
	}
	if got := store.Read(); got != "" {
		t.Errorf("expired token still stored: %q", got)
	}
}

func TestInitializeRejectedTokenDemotesToAnonymous(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid token"}`))
	}))
	defer srv.Close()

	store := newStore(t)
	store.Write(signedToken(t, time.Now().Add(time.Hour)))

	s := New(api.NewClient(srv.URL, store.Read), store)
	s.Initialize(context.Background())

	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after server rejected the token")
	}
	if got := store.Read(); got != "" {
		t.Errorf("rejected token still stored: %q", got)
	}
}

func TestLoginPersistsTokenAndLogoutDropsIt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","access_token":"tok-xyz","user":{"id":"u1","username":"stella","nickname":"Stella"}}`))
	}))
	defer srv.Close()

	store := newStore(t)
	s := New(api.NewClient(srv.URL, store.Read), store)
	s.Initialize(context.Background())

	user, err := s.Login(context.Background(), "stella", "hunter22")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Username != "stella" {
		t.Errorf("Login() user = %q, want stella", user.Username)
	}
	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after login")
	}
	if got := store.Read(); got != "tok-xyz" {
		t.Errorf("stored token = %q, want tok-xyz", got)
	}

	s.Logout()
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout")
	}
	if s.User() != nil {
		t.Error("User() != nil after logout")
	}
	if got := store.Read(); got != "" {
		t.Errorf("token still stored after logout: %q", got)
	}
}

func TestDefaultCredentialPathHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	os.Setenv("ASTRO_CONFIG_DIR", dir)
	defer os.Unsetenv("ASTRO_CONFIG_DIR")

	if got := DefaultCredentialPath(); got != filepath.Join(dir, "credentials.json") {
		t.Errorf("DefaultCredentialPath() = %q", got)
	}
}
