package proj

import (
	"fmt"

	"github.com/Yoshida088603/dxf2geojson/internal/geometry"
)

// Transform reprojects horizontal coordinates from a source to a target
// coordinate system, pivoting through WGS84. Elevation never takes part in
// the transform; it is re-attached to each vertex by index.
type Transform struct {
	src Projection
	dst Projection
}

// NewTransform resolves both EPSG codes and returns the composed transform.
// An unresolvable code is a configuration error, fatal at the caller.
func NewTransform(srcEPSG, dstEPSG int) (*Transform, error) {
	src, err := ForEPSG(srcEPSG)
	if err != nil {
		return nil, err
	}
	dst, err := ForEPSG(dstEPSG)
	if err != nil {
		return nil, err
	}
	return &Transform{src: src, dst: dst}, nil
}

// Source returns the source EPSG code.
func (t *Transform) Source() int { return t.src.EPSG() }

// Target returns the target EPSG code.
func (t *Transform) Target() int { return t.dst.EPSG() }

// Inverse returns the transform in the opposite direction.
func (t *Transform) Inverse() *Transform {
	return &Transform{src: t.dst, dst: t.src}
}

// Point transforms one horizontal coordinate pair.
func (t *Transform) Point(x, y float64) (float64, float64, error) {
	if t.src.EPSG() == t.dst.EPSG() {
		return x, y, nil
	}
	lon, lat, err := t.src.ToWGS84(x, y)
	if err != nil {
		return 0, 0, err
	}
	return t.dst.FromWGS84(lon, lat)
}

// Geometry transforms every vertex of g, preserving variant, ring order and
// vertex order. Empty geometry passes through unchanged. Any failing vertex
// fails the whole geometry so a feature is either fully transformed or kept
// untouched by the caller.
func (t *Transform) Geometry(g geometry.Geometry) (geometry.Geometry, error) {
	if g == nil || g.Empty() {
		return g, nil
	}

	switch g := g.(type) {
	case geometry.Point:
		x, y, err := t.Point(g.X, g.Y)
		if err != nil {
			return nil, err
		}
		return geometry.Point{X: x, Y: y, Z: g.Z}, nil

	case geometry.LineString:
		coords, err := t.batch(g)
		if err != nil {
			return nil, err
		}
		return geometry.LineString(coords), nil

	case geometry.Polygon:
		exterior, err := t.batch(g.Exterior)
		if err != nil {
			return nil, fmt.Errorf("exterior ring: %w", err)
		}
		out := geometry.Polygon{Exterior: exterior}
		if len(g.Interiors) > 0 {
			out.Interiors = make([]geometry.Ring, len(g.Interiors))
			for i, ring := range g.Interiors {
				transformed, err := t.batch(ring)
				if err != nil {
					return nil, fmt.Errorf("interior ring %d: %w", i, err)
				}
				out.Interiors[i] = transformed
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown geometry variant %T", g)
}

// batch transforms one ordered coordinate sequence. Every vertex gets the
// same numerical treatment and the output aligns with the input by index.
func (t *Transform) batch(coords []geometry.Coordinate) ([]geometry.Coordinate, error) {
	out := make([]geometry.Coordinate, len(coords))
	for i, c := range coords {
		x, y, err := t.Point(c.X, c.Y)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		out[i] = geometry.Coordinate{X: x, Y: y, Z: c.Z}
	}
	return out, nil
}
