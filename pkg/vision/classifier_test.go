package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "galaxy.jpg")
	if err := os.WriteFile(path, []byte("fake-jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGalaxyClassName(t *testing.T) {
	tests := []struct {
		idx  int
		want string
	}{
		{0, "Disk, Face-on, No Spiral"},
		{9, "Star"},
		{-1, "Unknown"},
		{10, "Unknown"},
	}
	for _, tt := range tests {
		if got := GalaxyClassName(tt.idx); got != tt.want {
			t.Errorf("GalaxyClassName(%d) = %q, want %q", tt.idx, got, tt.want)
		}
	}
}

func TestClassifyPicksHighestProbability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if _, _, err := r.FormFile("image"); err != nil {
			t.Errorf("FormFile(image): %v", err)
		}
		w.Write([]byte(`{"predictions":[0.01,0.02,0.80,0.05,0.02,0.02,0.03,0.02,0.02,0.01]}`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	result, err := c.Classify(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.PredictedClass != 2 {
		t.Errorf("PredictedClass = %d, want 2", result.PredictedClass)
	}
	if result.ClassName != "Disk, Face-on, Medium Spiral" {
		t.Errorf("ClassName = %q", result.ClassName)
	}
	if result.Confidence != 0.80 {
		t.Errorf("Confidence = %v, want 0.80", result.Confidence)
	}
	if len(result.AllPredictions) != 10 {
		t.Errorf("len(AllPredictions) = %d, want 10", len(result.AllPredictions))
	}
	if result.AllPredictions["Star"] != 0.01 {
		t.Errorf("AllPredictions[Star] = %v", result.AllPredictions["Star"])
	}
}

func TestClassifyEmptyPredictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[]}`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	if _, err := c.Classify(context.Background(), writeImage(t)); err == nil {
		t.Fatal("Classify() error = nil, want error for empty prediction vector")
	}
}

func TestClassifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model not loaded"))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL)
	if _, err := c.Classify(context.Background(), writeImage(t)); err == nil {
		t.Fatal("Classify() error = nil, want error for 500 response")
	}
}
