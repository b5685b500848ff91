package render

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Star is a point in a unit-ish cube around the camera origin. Named stars
// come from saved space-engine views; background stars are procedural.
type Star struct {
	X, Y, Z float64
	Name    string
}

// Starfield projects a rotating 3D star cloud onto a character grid. The
// camera orbits the origin; yaw and pitch are radians, zoom scales the
// projection.
type Starfield struct {
	Stars []Star
	Yaw   float64
	Pitch float64
	Zoom  float64
}

const (
	minZoom = 0.2
	maxZoom = 5.0
)

// NewStarfield seeds a deterministic background so the same invocation
// always renders the same sky.
func NewStarfield(background int, seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, 0, background)
	for i := 0; i < background; i++ {
		stars = append(stars, Star{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		})
	}
	return &Starfield{
		Stars: stars,
		Zoom:  1.0,
	}
}

// AddObject places a named marker from equatorial coordinates. Distance only
// affects depth shading, so it is normalized into the cube.
func (s *Starfield) AddObject(name string, raDeg, decDeg, distance float64) {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180

	r := 0.9
	if distance > 0 {
		// Log scale keeps nearby and distant objects on screen together.
		r = math.Min(0.9, 0.3+0.2*math.Log10(1+distance))
	}

	s.Stars = append(s.Stars, Star{
		X:    r * math.Cos(dec) * math.Cos(ra),
		Y:    r * math.Sin(dec),
		Z:    r * math.Cos(dec) * math.Sin(ra),
		Name: name,
	})
}

func (s *Starfield) Rotate(dYaw, dPitch float64) {
	s.Yaw += dYaw
	s.Pitch += dPitch
	if s.Pitch > math.Pi/2 {
		s.Pitch = math.Pi / 2
	}
	if s.Pitch < -math.Pi/2 {
		s.Pitch = -math.Pi / 2
	}
}

func (s *Starfield) ZoomBy(factor float64) {
	s.Zoom *= factor
	if s.Zoom < minZoom {
		s.Zoom = minZoom
	}
	if s.Zoom > maxZoom {
		s.Zoom = maxZoom
	}
}

// Frame renders one view into a width x height character grid. Depth picks
// the glyph: nearer stars are brighter.
func (s *Starfield) Frame(width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	labels := make(map[[2]int]string)

	sinYaw, cosYaw := math.Sincos(s.Yaw)
	sinPitch, cosPitch := math.Sincos(s.Pitch)

	for _, star := range s.Stars {
		// Yaw around Y, then pitch around X.
		x := star.X*cosYaw + star.Z*sinYaw
		z := -star.X*sinYaw + star.Z*cosYaw
		y := star.Y*cosPitch - z*sinPitch
		z = star.Y*sinPitch + z*cosPitch

		// Push the cloud in front of the camera.
		depth := z + 2.2
		if depth <= 0.1 {
			continue
		}

		scale := s.Zoom / depth
		col := int((x*scale + 1) / 2 * float64(width-1))
		// Terminal cells are taller than wide; halve the vertical scale.
		row := int((1 - (y*scale*2 + 1)/2) * float64(height-1))
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}

		grid[row][col] = glyphForDepth(depth)
		if star.Name != "" {
			grid[row][col] = '◉'
			labels[[2]int{row, col}] = star.Name
		}
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		line := strings.TrimRight(string(grid[row]), " ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for pos, name := range labels {
		b.WriteString(fmt.Sprintf("  ◉ %s (row %d, col %d)\n", name, pos[0], pos[1]))
	}
	return b.String()
}

func glyphForDepth(depth float64) rune {
	switch {
	case depth < 1.6:
		return '*'
	case depth < 2.4:
		return '+'
	case depth < 3.0:
		return '.'
	default:
		return '·'
	}
}
