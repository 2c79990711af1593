package proj

import (
	"math"
	"testing"

	"github.com/Yoshida088603/dxf2geojson/internal/geometry"
)

func TestNewTransformUnresolvable(t *testing.T) {
	if _, err := NewTransform(9999, 4326); err == nil {
		t.Error("expected error for unresolvable source")
	}
	if _, err := NewTransform(6677, 9999); err == nil {
		t.Error("expected error for unresolvable target")
	}
}

func TestTransformPreservesElevationByIndex(t *testing.T) {
	transform, err := NewTransform(6677, 4326)
	if err != nil {
		t.Fatal(err)
	}

	line := geometry.LineString{
		{X: 0, Y: 0, Z: 5},
		{X: 100, Y: 0, Z: 6.5},
		{X: 100, Y: 100, Z: -2},
		{X: 0, Y: 100, Z: 0},
	}

	g, err := transform.Geometry(line)
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	out, ok := g.(geometry.LineString)
	if !ok {
		t.Fatalf("got %T, want LineString", g)
	}
	if len(out) != len(line) {
		t.Fatalf("vertex count changed: %d -> %d", len(line), len(out))
	}
	for i := range line {
		if out[i].Z != line[i].Z {
			t.Errorf("vertex %d z = %v, want %v", i, out[i].Z, line[i].Z)
		}
		if out[i].X == line[i].X && out[i].Y == line[i].Y {
			t.Errorf("vertex %d horizontal coordinates unchanged", i)
		}
	}
}

func TestTransformPoint(t *testing.T) {
	transform, err := NewTransform(6677, 4326)
	if err != nil {
		t.Fatal(err)
	}

	g, err := transform.Geometry(geometry.Point{X: 100, Y: 200, Z: 5})
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	p := g.(geometry.Point)
	if p.Z != 5 {
		t.Errorf("z = %v, want 5", p.Z)
	}
	if math.Abs(p.X-(139+50.0/60)) > 0.01 || math.Abs(p.Y-36) > 0.01 {
		t.Errorf("point landed at (%f, %f), expected near zone IX origin", p.X, p.Y)
	}
}

func TestTransformPolygonRingOrder(t *testing.T) {
	transform, err := NewTransform(6677, 3857)
	if err != nil {
		t.Fatal(err)
	}

	poly := geometry.Polygon{
		Exterior: geometry.Ring{
			{X: 0, Y: 0, Z: 1}, {X: 100, Y: 0, Z: 1}, {X: 100, Y: 100, Z: 1}, {X: 0, Y: 100, Z: 1}, {X: 0, Y: 0, Z: 1},
		},
		Interiors: []geometry.Ring{
			{{X: 20, Y: 20, Z: 1}, {X: 20, Y: 40, Z: 1}, {X: 40, Y: 40, Z: 1}, {X: 20, Y: 20, Z: 1}},
		},
	}

	g, err := transform.Geometry(poly)
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	out := g.(geometry.Polygon)
	if len(out.Exterior) != len(poly.Exterior) {
		t.Errorf("exterior length changed: %d", len(out.Exterior))
	}
	if len(out.Interiors) != 1 || len(out.Interiors[0]) != 4 {
		t.Fatalf("interiors = %+v", out.Interiors)
	}
	if !out.Exterior.Closed() {
		t.Error("transformed exterior lost closure")
	}
	for i := range out.Exterior {
		if out.Exterior[i].Z != 1 {
			t.Errorf("exterior vertex %d z = %v", i, out.Exterior[i].Z)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	transform, err := NewTransform(6677, 4326)
	if err != nil {
		t.Fatal(err)
	}
	inverse := transform.Inverse()

	line := geometry.LineString{
		{X: 1234.5, Y: -6789.0, Z: 3},
		{X: -20000, Y: 45000, Z: 4},
	}
	there, err := transform.Geometry(line)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	back, err := inverse.Geometry(there)
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}

	out := back.(geometry.LineString)
	for i := range line {
		if math.Abs(out[i].X-line[i].X) > 1e-3 || math.Abs(out[i].Y-line[i].Y) > 1e-3 {
			t.Errorf("vertex %d round trip: %+v -> %+v", i, line[i], out[i])
		}
	}
}

func TestTransformSameSystemIsIdentity(t *testing.T) {
	transform, err := NewTransform(4326, 4326)
	if err != nil {
		t.Fatal(err)
	}
	p := geometry.Point{X: 139.83, Y: 36.0, Z: 9}
	g, err := transform.Geometry(p)
	if err != nil {
		t.Fatal(err)
	}
	if g.(geometry.Point) != p {
		t.Errorf("identity transform changed the point: %+v", g)
	}
}

func TestTransformEmptyPassesThrough(t *testing.T) {
	transform, err := NewTransform(6677, 4326)
	if err != nil {
		t.Fatal(err)
	}

	g, err := transform.Geometry(geometry.LineString{})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Empty() {
		t.Error("empty geometry did not pass through")
	}
}

func TestTransformFailureFailsWholeGeometry(t *testing.T) {
	transform, err := NewTransform(4326, 3857)
	if err != nil {
		t.Fatal(err)
	}

	line := geometry.LineString{
		{X: 139.8, Y: 36, Z: 0},
		{X: 139.8, Y: 89, Z: 0}, // beyond the Web Mercator limit
	}
	if _, err := transform.Geometry(line); err == nil {
		t.Error("expected error for an out-of-domain vertex")
	}
}
