package mapper

import (
	"testing"
	"time"

	"astro-observer/internal/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestConstellationRoundtripKeepsDetections(t *testing.T) {
	m := NewObservationMapper()

	rec := &entity.ConstellationRecognition{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		ImagePath: "uploads/constellation/orion.jpg",
		Detections: []entity.ConstellationDetection{
			{Class: "Orion", Confidence: 0.92, X: 320, Y: 240, Width: 110, Height: 95},
			{Class: "Taurus", Confidence: 0.71, X: 500, Y: 130, Width: 80, Height: 60},
		},
		Confidence: 0.815,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}

	got := m.ConstellationToEntity(m.ConstellationToModel(rec))
	if got == nil {
		t.Fatal("roundtrip returned nil")
	}
	if len(got.Detections) != 2 {
		t.Fatalf("len(Detections) = %d, want 2", len(got.Detections))
	}
	if got.Detections[0].Class != "Orion" || got.Detections[1].Class != "Taurus" {
		t.Errorf("unexpected detections: %+v", got.Detections)
	}
	if got.Confidence != rec.Confidence {
		t.Errorf("Confidence = %v, want %v", got.Confidence, rec.Confidence)
	}
}

func TestConstellationToEntityBadJSONDegradesToEmpty(t *testing.T) {
	m := NewObservationMapper()

	mdl := m.ConstellationToModel(&entity.ConstellationRecognition{Id: uuid.New()})
	mdl.Detections = datatypes.JSON([]byte(`{not json`))

	got := m.ConstellationToEntity(mdl)
	if got == nil {
		t.Fatal("ConstellationToEntity() = nil")
	}
	if len(got.Detections) != 0 {
		t.Errorf("Detections = %+v, want empty on bad column data", got.Detections)
	}
}

func TestMappersHandleNil(t *testing.T) {
	m := NewObservationMapper()

	if m.GalaxyToEntity(nil) != nil || m.GalaxyToModel(nil) != nil {
		t.Error("galaxy mapper did not pass nil through")
	}
	if m.ConstellationToEntity(nil) != nil || m.ConstellationToModel(nil) != nil {
		t.Error("constellation mapper did not pass nil through")
	}
	if m.PositioningToEntity(nil) != nil || m.PositioningToModel(nil) != nil {
		t.Error("positioning mapper did not pass nil through")
	}
}

func TestPositioningPreservesUnsolvedFields(t *testing.T) {
	m := NewObservationMapper()

	solveTime := 312.4
	rec := &entity.CelestialPositioning{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		ImagePath: "uploads/positioning/field.jpg",
		Solved:    false,
		SolveTime: &solveTime,
	}

	got := m.PositioningToEntity(m.PositioningToModel(rec))
	if got.Solved {
		t.Error("Solved = true, want false")
	}
	if got.Ra != nil || got.Dec != nil {
		t.Error("unsolved record should keep nil coordinates")
	}
	if got.SolveTime == nil || *got.SolveTime != solveTime {
		t.Errorf("SolveTime = %v, want %v", got.SolveTime, solveTime)
	}
}
