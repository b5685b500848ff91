package render

import (
	"math"
	"strings"
	"testing"
)

func TestFrameIsDeterministic(t *testing.T) {
	a := NewStarfield(120, 7)
	b := NewStarfield(120, 7)

	if a.Frame(80, 24) != b.Frame(80, 24) {
		t.Error("same seed produced different frames")
	}

	c := NewStarfield(120, 8)
	if a.Frame(80, 24) == c.Frame(80, 24) {
		t.Error("different seeds produced identical frames")
	}
}

func TestFrameShowsNamedMarker(t *testing.T) {
	field := NewStarfield(0, 1)
	field.AddObject("Andromeda", 10.6847, 41.2687, 2537000)

	frame := field.Frame(80, 24)
	if !strings.Contains(frame, "◉") {
		t.Error("frame missing marker glyph for named object")
	}
	if !strings.Contains(frame, "Andromeda") {
		t.Error("frame missing label for named object")
	}
}

func TestRotateClampsPitch(t *testing.T) {
	field := NewStarfield(0, 1)

	field.Rotate(0, 10)
	if field.Pitch != math.Pi/2 {
		t.Errorf("Pitch = %v, want clamped to %v", field.Pitch, math.Pi/2)
	}
	field.Rotate(0, -20)
	if field.Pitch != -math.Pi/2 {
		t.Errorf("Pitch = %v, want clamped to %v", field.Pitch, -math.Pi/2)
	}
}

func TestZoomByClamps(t *testing.T) {
	field := NewStarfield(0, 1)

	field.ZoomBy(100)
	if field.Zoom != maxZoom {
		t.Errorf("Zoom = %v, want %v", field.Zoom, maxZoom)
	}
	field.ZoomBy(0.0001)
	if field.Zoom != minZoom {
		t.Errorf("Zoom = %v, want %v", field.Zoom, minZoom)
	}
}

func TestFrameTooSmall(t *testing.T) {
	field := NewStarfield(10, 1)
	if got := field.Frame(1, 1); got != "" {
		t.Errorf("Frame(1,1) = %q, want empty", got)
	}
}
