package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func noToken() string { return "" }

func TestServerErrorBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid username or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, noToken)
	_, _, err := c.Login(context.Background(), "stella", "wrong")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Login() error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", apiErr.Status)
	}
	if apiErr.Message != "Invalid username or password" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestServerErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, noToken)
	_, err := c.Me(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Me() error = %v, want *APIError", err)
	}
	if apiErr.Message != "request failed with status 502" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestBearerTokenReadPerCall(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"user":{"id":"u1","username":"stella"}}`))
	}))
	defer srv.Close()

	token := ""
	c := NewClient(srv.URL, func() string { return token })

	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q before login, want empty", gotAuth)
	}

	token = "tok-abc"
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want Bearer tok-abc", gotAuth)
	}
}

func TestHistoryPath(t *testing.T) {
	tests := []struct {
		limit int
		want  string
	}{
		{0, "/api/galaxy/history"},
		{-1, "/api/galaxy/history"},
		{25, "/api/galaxy/history?limit=25"},
	}
	for _, tt := range tests {
		if got := historyPath("/api/galaxy/history", tt.limit); got != tt.want {
			t.Errorf("historyPath(%d) = %q, want %q", tt.limit, got, tt.want)
		}
	}
}

func TestGalaxyHistoryQuery(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{"history":[{"id":"h1","class_name":"Spiral","confidence":0.91}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, noToken)
	items, err := c.GalaxyHistory(context.Background(), 5)
	if err != nil {
		t.Fatalf("GalaxyHistory() error = %v", err)
	}
	if gotURL != "/api/galaxy/history?limit=5" {
		t.Errorf("request URL = %q", gotURL)
	}
	if len(items) != 1 || items[0].ClassName != "Spiral" {
		t.Errorf("unexpected history: %+v", items)
	}
}

func TestChatReadsNestedResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Chat response generated","result":{"session_id":"session_7","message":"Orion rises in the east.","role":"assistant"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, noToken)
	reply, err := c.Chat(context.Background(), "Where is Orion?", "session_7", "constellation")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply.SessionId != "session_7" {
		t.Errorf("SessionId = %q, want session_7", reply.SessionId)
	}
	if reply.Message != "Orion rises in the east." || reply.Role != "assistant" {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestClassifyGalaxySendsMultipart(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "m31.jpg")
	if err := os.WriteFile(imgPath, []byte("fake-jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("FormFile(image): %v", err)
		}
		defer file.Close()
		if header.Filename != "m31.jpg" {
			t.Errorf("filename = %q, want m31.jpg", header.Filename)
		}
		w.Write([]byte(`{"result":{"predicted_class":1,"class_name":"Spiral","confidence":0.97,"all_predictions":{"Spiral":0.97,"Elliptical":0.03}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, noToken)
	result, err := c.ClassifyGalaxy(context.Background(), imgPath)
	if err != nil {
		t.Fatalf("ClassifyGalaxy() error = %v", err)
	}
	if result.ClassName != "Spiral" || result.Confidence != 0.97 {
		t.Errorf("unexpected result: %+v", result)
	}
}
