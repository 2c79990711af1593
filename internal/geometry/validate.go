package geometry

import (
	"fmt"
	"math"
)

// ErrInvalidGeometry indicates a geometry that violates the model invariants.
type ErrInvalidGeometry struct {
	Type   Type
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Type, e.Reason)
}

// Validate checks the well-formedness invariants appropriate to the
// geometry's kind: finite coordinates everywhere, at least two vertices per
// line, and closed rings of at least four coordinates per polygon ring.
func Validate(g Geometry) error {
	switch g := g.(type) {
	case Point:
		if !finite(Coordinate(g)) {
			return &ErrInvalidGeometry{Type: TypePoint, Reason: "non-finite coordinate"}
		}
	case LineString:
		if len(g) < 2 {
			return &ErrInvalidGeometry{Type: TypeLineString, Reason: fmt.Sprintf("%d vertices, need at least 2", len(g))}
		}
		for _, c := range g {
			if !finite(c) {
				return &ErrInvalidGeometry{Type: TypeLineString, Reason: "non-finite coordinate"}
			}
		}
	case Polygon:
		if err := validateRing(g.Exterior, "exterior"); err != nil {
			return err
		}
		for i, r := range g.Interiors {
			if err := validateRing(r, fmt.Sprintf("interior %d", i)); err != nil {
				return err
			}
		}
	default:
		return &ErrInvalidGeometry{Reason: "unknown geometry variant"}
	}
	return nil
}

func validateRing(r Ring, name string) error {
	if len(r) < 4 {
		return &ErrInvalidGeometry{
			Type:   TypePolygon,
			Reason: fmt.Sprintf("%s ring has %d coordinates, need at least 4", name, len(r)),
		}
	}
	if !r.Closed() {
		return &ErrInvalidGeometry{Type: TypePolygon, Reason: name + " ring is not closed"}
	}
	for _, c := range r {
		if !finite(c) {
			return &ErrInvalidGeometry{Type: TypePolygon, Reason: name + " ring has a non-finite coordinate"}
		}
	}
	return nil
}

func finite(c Coordinate) bool {
	for _, v := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
