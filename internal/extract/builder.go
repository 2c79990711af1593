// Package extract maps drawing entities to geometry and accumulates them
// into the feature list the rest of the pipeline works on.
package extract

import (
	"errors"
	"fmt"
	"math"

	"github.com/Yoshida088603/dxf2geojson/internal/dxf"
	"github.com/Yoshida088603/dxf2geojson/internal/geometry"
)

// DefaultArcStep is the angular sampling resolution for circles and arcs,
// in degrees per segment.
const DefaultArcStep = 5.0

// fullCircleEps treats an arc sweep within this many degrees of 360 as a
// full circle.
const fullCircleEps = 1e-9

// ErrUnsupportedKind marks an entity kind outside the six supported ones.
// The pipeline skips these silently rather than treating them as failures.
var ErrUnsupportedKind = errors.New("unsupported entity kind")

type buildFunc func(*Builder, dxf.Entity) (geometry.Geometry, error)

// builders dispatches entity kind to its extraction rule. Each rule is
// independently testable through Builder.Build.
var builders = map[string]buildFunc{
	dxf.KindPoint:      (*Builder).buildPoint,
	dxf.KindLWPolyline: (*Builder).buildPolyline,
	dxf.KindPolyline:   (*Builder).buildPolyline,
	dxf.KindLine:       (*Builder).buildLine,
	dxf.KindCircle:     (*Builder).buildCurve,
	dxf.KindArc:        (*Builder).buildCurve,
}

// Builder maps one drawing entity to one geometry value.
type Builder struct {
	arcStep float64
}

// NewBuilder returns a builder sampling curves every arcStep degrees.
// Non-positive values fall back to DefaultArcStep.
func NewBuilder(arcStep float64) *Builder {
	if arcStep <= 0 {
		arcStep = DefaultArcStep
	}
	return &Builder{arcStep: arcStep}
}

// Build extracts the geometry for one entity. Unsupported kinds return
// ErrUnsupportedKind; malformed or degenerate entities return a descriptive
// error. Build never panics and has no side effects.
func (b *Builder) Build(e dxf.Entity) (geometry.Geometry, error) {
	fn, ok := builders[e.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, e.Kind)
	}
	return fn(b, e)
}

func (b *Builder) buildPoint(e dxf.Entity) (geometry.Geometry, error) {
	return geometry.Point{X: e.Location.X, Y: e.Location.Y, Z: e.Location.Z}, nil
}

func (b *Builder) buildLine(e dxf.Entity) (geometry.Geometry, error) {
	if e.Start == e.End {
		return nil, fmt.Errorf("degenerate LINE: start equals end at (%g, %g)", e.Start.X, e.Start.Y)
	}
	return geometry.LineString{
		{X: e.Start.X, Y: e.Start.Y, Z: e.Start.Z},
		{X: e.End.X, Y: e.End.Y, Z: e.End.Z},
	}, nil
}

// buildPolyline handles LWPOLYLINE and POLYLINE. Elevation precedence per
// vertex: the vertex's own z when it carries one, else the entity
// elevation, else 0.0.
func (b *Builder) buildPolyline(e dxf.Entity) (geometry.Geometry, error) {
	if len(e.Vertices) == 0 {
		return nil, fmt.Errorf("%s has no vertices", e.Kind)
	}

	coords := make([]geometry.Coordinate, len(e.Vertices))
	for i, v := range e.Vertices {
		z := 0.0
		switch {
		case v.HasZ:
			z = v.Z
		case e.HasElevation:
			z = e.Elevation
		}
		coords[i] = geometry.Coordinate{X: v.X, Y: v.Y, Z: z}
	}

	if e.Closed {
		if distinctXY(coords) < 3 {
			return nil, fmt.Errorf("closed %s has fewer than 3 distinct vertices", e.Kind)
		}
		return geometry.Polygon{Exterior: closeRing(coords)}, nil
	}

	if len(coords) < 2 {
		return nil, fmt.Errorf("open %s has fewer than 2 vertices", e.Kind)
	}
	return geometry.LineString(coords), nil
}

// buildCurve approximates CIRCLE and ARC entities by sampling along the
// curve. A circle, or an arc sweeping the full 360 degrees, closes into a
// polygon ring; any other arc stays an open line.
func (b *Builder) buildCurve(e dxf.Entity) (geometry.Geometry, error) {
	if e.Radius <= 0 {
		return nil, fmt.Errorf("%s has non-positive radius %g", e.Kind, e.Radius)
	}

	start, sweep := 0.0, 360.0
	if e.Kind == dxf.KindArc {
		start = e.StartAngle
		sweep = math.Mod(e.EndAngle-e.StartAngle, 360)
		if sweep <= 0 {
			sweep += 360
		}
	}
	closed := sweep >= 360-fullCircleEps

	segments := int(math.Ceil(sweep / b.arcStep))
	if segments < 1 {
		segments = 1
	}

	sample := func(deg float64) geometry.Coordinate {
		rad := deg * math.Pi / 180
		return geometry.Coordinate{
			X: e.Center.X + e.Radius*math.Cos(rad),
			Y: e.Center.Y + e.Radius*math.Sin(rad),
			Z: e.Center.Z,
		}
	}

	if closed {
		coords := make([]geometry.Coordinate, 0, segments+1)
		for i := 0; i < segments; i++ {
			coords = append(coords, sample(start+float64(i)*sweep/float64(segments)))
		}
		return geometry.Polygon{Exterior: closeRing(coords)}, nil
	}

	coords := make([]geometry.Coordinate, 0, segments+1)
	for i := 0; i <= segments; i++ {
		coords = append(coords, sample(start+float64(i)*sweep/float64(segments)))
	}
	return geometry.LineString(coords), nil
}

// closeRing closes the coordinate sequence into a ring, appending the first
// vertex when the sequence does not already end on it.
func closeRing(coords []geometry.Coordinate) geometry.Ring {
	ring := geometry.Ring(coords)
	if !ring.Closed() {
		ring = append(ring, coords[0])
	}
	return ring
}

func distinctXY(coords []geometry.Coordinate) int {
	seen := make(map[[2]float64]struct{}, len(coords))
	for _, c := range coords {
		seen[[2]float64{c.X, c.Y}] = struct{}{}
	}
	return len(seen)
}
