package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectRequiresAPIKey(t *testing.T) {
	d := NewRoboflowDetector("", "constellations/3", 30, 40)
	if _, err := d.Detect(context.Background(), "does-not-matter.jpg"); err == nil {
		t.Fatal("Detect() error = nil, want error when api key is empty")
	}
}

func TestDetectParsesPredictions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/constellations/3" {
			t.Errorf("path = %q, want /constellations/3", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "rf-key" {
			t.Errorf("api_key = %q, want rf-key", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("FormFile(file): %v", err)
		}
		if got := r.FormValue("overlap"); got != "30" {
			t.Errorf("overlap = %q, want 30", got)
		}
		if got := r.FormValue("confidence"); got != "40" {
			t.Errorf("confidence = %q, want 40", got)
		}
		w.Write([]byte(`{"predictions":[{"class":"Orion","confidence":0.92,"x":320,"y":240,"width":110,"height":95}]}`))
	}))
	defer srv.Close()

	d := NewRoboflowDetector("rf-key", "constellations/3", 30, 40)
	d.BaseURL = srv.URL

	detections, err := d.Detect(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(detections) != 1 {
		t.Fatalf("len(detections) = %d, want 1", len(detections))
	}
	if detections[0].Class != "Orion" || detections[0].Confidence != 0.92 {
		t.Errorf("unexpected detection: %+v", detections[0])
	}
}

func TestDetectEmptySky(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[]}`))
	}))
	defer srv.Close()

	d := NewRoboflowDetector("rf-key", "constellations/3", 30, 40)
	d.BaseURL = srv.URL

	detections, err := d.Detect(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(detections) != 0 {
		t.Errorf("len(detections) = %d, want 0", len(detections))
	}
}
