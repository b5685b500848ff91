package astrometry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sky.jpg")
	if err := os.WriteFile(path, []byte("fake-jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolveFieldSuccess(t *testing.T) {
	var polls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("FormFile(file): %v", err)
		}
		if got := r.FormValue("apikey"); got != "secret-key" {
			t.Errorf("apikey = %q, want secret-key", got)
		}
		w.Write([]byte(`{"job_id":"job-7","status":"processing"}`))
	})
	mux.HandleFunc("/jobs/job-7", func(w http.ResponseWriter, r *http.Request) {
		// Solving on the first poll, done on the second.
		if atomic.AddInt32(&polls, 1) == 1 {
			w.Write([]byte(`{"status":"solving"}`))
			return
		}
		w.Write([]byte(`{"status":"success"}`))
	})
	mux.HandleFunc("/jobs/job-7/info", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"calibration":{"ra":10.6847,"dec":41.2687,"field_width":1.5,"field_height":1.0,"orientation":12.3}}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 5*time.Millisecond, 2*time.Second)
	result, err := c.SolveField(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("SolveField() error = %v", err)
	}
	if !result.Solved {
		t.Fatal("Solved = false, want true")
	}
	if result.Calibration == nil || result.Calibration.Ra != 10.6847 || result.Calibration.Dec != 41.2687 {
		t.Errorf("unexpected calibration: %+v", result.Calibration)
	}
	if result.SolveTime <= 0 {
		t.Errorf("SolveTime = %v, want > 0", result.SolveTime)
	}
}

func TestSolveFieldFailureReturnsUnsolved(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"job_id":"job-9"}`))
	})
	mux.HandleFunc("/jobs/job-9", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failure"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Millisecond, 2*time.Second)
	result, err := c.SolveField(context.Background(), writeImage(t))
	if !errors.Is(err, ErrUnsolved) {
		t.Fatalf("SolveField() error = %v, want ErrUnsolved", err)
	}
	if result == nil || result.Solved {
		t.Errorf("result = %+v, want unsolved result", result)
	}
}

func TestSolveFieldTimesOut(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"job_id":"job-slow"}`))
	})
	mux.HandleFunc("/jobs/job-slow", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"solving"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Millisecond, 30*time.Millisecond)
	result, err := c.SolveField(context.Background(), writeImage(t))
	if err == nil || errors.Is(err, ErrUnsolved) {
		t.Fatalf("SolveField() error = %v, want timeout error", err)
	}
	if result == nil || result.Solved {
		t.Errorf("result = %+v, want unsolved result", result)
	}
}

func TestSolveFieldUploadWithoutJobId(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","error":"bad image"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 5*time.Millisecond, time.Second)
	if _, err := c.SolveField(context.Background(), writeImage(t)); err == nil {
		t.Fatal("SolveField() error = nil, want error for missing job id")
	}
}
