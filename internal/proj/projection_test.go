package proj

import (
	"errors"
	"math"
	"testing"
)

func TestForEPSG(t *testing.T) {
	supported := []int{4326, 3857, 6669, 6677, 6687}
	for _, code := range supported {
		p, err := ForEPSG(code)
		if err != nil {
			t.Errorf("ForEPSG(%d): %v", code, err)
			continue
		}
		if p.EPSG() != code {
			t.Errorf("ForEPSG(%d).EPSG() = %d", code, p.EPSG())
		}
	}
}

func TestForEPSGUnsupported(t *testing.T) {
	for _, code := range []int{0, 4490, 6668, 6688, 32654} {
		_, err := ForEPSG(code)
		if err == nil {
			t.Errorf("ForEPSG(%d): expected error", code)
			continue
		}
		var unsupported *ErrUnsupportedCRS
		if !errors.As(err, &unsupported) {
			t.Errorf("ForEPSG(%d): error type %T", code, err)
		}
	}
}

func TestPlaneRectangularOrigin(t *testing.T) {
	p, err := ForEPSG(6677) // zone IX: 36N, 139°50'E
	if err != nil {
		t.Fatal(err)
	}

	lon, lat, err := p.ToWGS84(0, 0)
	if err != nil {
		t.Fatalf("ToWGS84: %v", err)
	}
	wantLon := 139 + 50.0/60
	if math.Abs(lon-wantLon) > 1e-9 {
		t.Errorf("origin lon = %.12f, want %.12f", lon, wantLon)
	}
	if math.Abs(lat-36) > 1e-9 {
		t.Errorf("origin lat = %.12f, want 36", lat)
	}
}

func TestPlaneRectangularDirections(t *testing.T) {
	p, _ := ForEPSG(6677)
	originLon := 139 + 50.0/60

	// A point north-east of the natural origin must get positive
	// easting and northing.
	x, y, err := p.FromWGS84(originLon+0.1, 36.1)
	if err != nil {
		t.Fatalf("FromWGS84: %v", err)
	}
	if x <= 0 || y <= 0 {
		t.Errorf("north-east of origin gave (%g, %g), want both positive", x, y)
	}

	// Roughly 0.1 degree of latitude is about 11km of northing.
	if y < 10e3 || y > 12.5e3 {
		t.Errorf("northing for 0.1 deg lat = %g, expected about 11km", y)
	}
}

func TestPlaneRectangularRoundTrip(t *testing.T) {
	for _, code := range []int{6669, 6677, 6681, 6686} {
		p, err := ForEPSG(code)
		if err != nil {
			t.Fatalf("ForEPSG(%d): %v", code, err)
		}

		points := [][2]float64{
			{0, 0},
			{100, 200},
			{-15000, 42000},
			{50000, -80000},
		}
		for _, pt := range points {
			lon, lat, err := p.ToWGS84(pt[0], pt[1])
			if err != nil {
				t.Fatalf("EPSG:%d ToWGS84(%v): %v", code, pt, err)
			}
			x, y, err := p.FromWGS84(lon, lat)
			if err != nil {
				t.Fatalf("EPSG:%d FromWGS84: %v", code, err)
			}
			if math.Abs(x-pt[0]) > 1e-3 || math.Abs(y-pt[1]) > 1e-3 {
				t.Errorf("EPSG:%d round trip %v -> (%g, %g)", code, pt, x, y)
			}
		}
	}
}

func TestPlaneRectangularOutOfDomain(t *testing.T) {
	p, _ := ForEPSG(6677)
	if _, _, err := p.FromWGS84(60, 36); err == nil {
		t.Error("expected error far from the central meridian")
	}
	if _, _, err := p.FromWGS84(139.8, 95); err == nil {
		t.Error("expected error for latitude beyond 90")
	}
}

func TestWebMercatorKnownValue(t *testing.T) {
	p, _ := ForEPSG(3857)

	// San Francisco, the reference value the orb project docs use.
	x, y, err := p.FromWGS84(-122.416667, 37.783333)
	if err != nil {
		t.Fatalf("FromWGS84: %v", err)
	}
	if math.Abs(x-(-13627361.035049736)) > 1e-2 {
		t.Errorf("x = %f", x)
	}
	if math.Abs(y-4548863.085837512) > 1e-2 {
		t.Errorf("y = %f", y)
	}

	lon, lat, err := p.ToWGS84(x, y)
	if err != nil {
		t.Fatalf("ToWGS84: %v", err)
	}
	if math.Abs(lon-(-122.416667)) > 1e-9 || math.Abs(lat-37.783333) > 1e-9 {
		t.Errorf("round trip = (%f, %f)", lon, lat)
	}
}

func TestWebMercatorOutOfDomain(t *testing.T) {
	p, _ := ForEPSG(3857)
	_, _, err := p.FromWGS84(0, 89)
	if err == nil {
		t.Fatal("expected error beyond the Web Mercator latitude limit")
	}
	var domain *ErrOutOfDomain
	if !errors.As(err, &domain) {
		t.Errorf("error type %T", err)
	}
}

func TestWGS84Bounds(t *testing.T) {
	p, _ := ForEPSG(4326)
	if _, _, err := p.ToWGS84(200, 0); err == nil {
		t.Error("expected error for longitude beyond 180")
	}
	if _, _, err := p.ToWGS84(139.8, 100); err == nil {
		t.Error("expected error for latitude beyond 90")
	}
}
