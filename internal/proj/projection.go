// Package proj resolves EPSG codes to projections and reprojects geometry
// between coordinate reference systems. Horizontal coordinates follow the
// always-xy convention: x is easting/longitude, y is northing/latitude.
package proj

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// EPSG codes with dedicated handling.
const (
	EPSGWGS84       = 4326
	EPSGWebMercator = 3857
)

// webMercatorMaxLat is the latitude limit of the Web Mercator projection.
const webMercatorMaxLat = 85.05112878

// Projection converts between one coordinate reference system and WGS84.
type Projection interface {
	// ToWGS84 converts projected coordinates to longitude/latitude degrees.
	ToWGS84(x, y float64) (lon, lat float64, err error)

	// FromWGS84 converts longitude/latitude degrees to projected coordinates.
	FromWGS84(lon, lat float64) (x, y float64, err error)

	// EPSG returns the EPSG code of this projection.
	EPSG() int
}

// ErrUnsupportedCRS indicates an EPSG code with no registered projection.
type ErrUnsupportedCRS struct {
	Code int
}

func (e *ErrUnsupportedCRS) Error() string {
	return fmt.Sprintf("unsupported coordinate system: EPSG:%d", e.Code)
}

// ErrOutOfDomain indicates coordinates outside a projection's valid domain.
type ErrOutOfDomain struct {
	EPSG   int
	X, Y   float64
	Reason string
}

func (e *ErrOutOfDomain) Error() string {
	return fmt.Sprintf("EPSG:%d: coordinate (%g, %g) out of domain: %s",
		e.EPSG, e.X, e.Y, e.Reason)
}

// ForEPSG returns the projection registered for the given EPSG code:
// 4326 (WGS84), 3857 (Web Mercator) and 6669-6687 (JGD2011 plane
// rectangular zones I-XIX). Any other code is an ErrUnsupportedCRS.
func ForEPSG(code int) (Projection, error) {
	switch {
	case code == EPSGWGS84:
		return wgs84{}, nil
	case code == EPSGWebMercator:
		return webMercator{}, nil
	case code >= 6669 && code <= 6687:
		return newPlaneRectangular(code), nil
	}
	return nil, &ErrUnsupportedCRS{Code: code}
}

// wgs84 is the identity projection for data already in EPSG:4326.
type wgs84 struct{}

func (wgs84) ToWGS84(x, y float64) (float64, float64, error) {
	if math.Abs(y) > 90 || math.Abs(x) > 180 {
		return 0, 0, &ErrOutOfDomain{EPSG: EPSGWGS84, X: x, Y: y, Reason: "not a longitude/latitude pair"}
	}
	return x, y, nil
}

func (wgs84) FromWGS84(lon, lat float64) (float64, float64, error) {
	return lon, lat, nil
}

func (wgs84) EPSG() int { return EPSGWGS84 }

// webMercator is EPSG:3857, delegating the spherical math to orb/project.
type webMercator struct{}

func (webMercator) ToWGS84(x, y float64) (float64, float64, error) {
	p := project.Mercator.ToWGS84(orb.Point{x, y})
	if !finitePair(p[0], p[1]) {
		return 0, 0, &ErrOutOfDomain{EPSG: EPSGWebMercator, X: x, Y: y, Reason: "non-finite result"}
	}
	return p[0], p[1], nil
}

func (webMercator) FromWGS84(lon, lat float64) (float64, float64, error) {
	if math.Abs(lat) > webMercatorMaxLat {
		return 0, 0, &ErrOutOfDomain{
			EPSG: EPSGWebMercator, X: lon, Y: lat,
			Reason: fmt.Sprintf("latitude beyond ±%v", webMercatorMaxLat),
		}
	}
	p := project.WGS84.ToMercator(orb.Point{lon, lat})
	if !finitePair(p[0], p[1]) {
		return 0, 0, &ErrOutOfDomain{EPSG: EPSGWebMercator, X: lon, Y: lat, Reason: "non-finite result"}
	}
	return p[0], p[1], nil
}

func (webMercator) EPSG() int { return EPSGWebMercator }

func finitePair(a, b float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && !math.IsNaN(b) && !math.IsInf(b, 0)
}
