package proj

import "math"

// GRS80 ellipsoid and the common scale factor of the Japan Plane
// Rectangular CS (JGD2011, EPSG:6669-6687).
const (
	grs80A       = 6378137.0
	grs80F       = 1.0 / 298.257222101
	planeRectK0  = 0.9999
	maxLonOffset = 45.0 // degrees from the central meridian
)

// zoneOrigins maps the EPSG code of each JGD2011 plane rectangular zone to
// its natural origin {latitude, longitude} in degrees. Zones I-XIX; false
// easting and northing are both zero.
var zoneOrigins = map[int][2]float64{
	6669: {33, 129.5},
	6670: {33, 131},
	6671: {36, 132 + 10.0/60},
	6672: {33, 133.5},
	6673: {36, 134 + 20.0/60},
	6674: {36, 136},
	6675: {36, 137 + 10.0/60},
	6676: {36, 138.5},
	6677: {36, 139 + 50.0/60},
	6678: {40, 140 + 50.0/60},
	6679: {44, 140.25},
	6680: {44, 142.25},
	6681: {44, 144.25},
	6682: {26, 142},
	6683: {26, 127.5},
	6684: {26, 124},
	6685: {26, 131},
	6686: {20, 136},
	6687: {26, 154},
}

// planeRectangular is a Gauss-Krueger transverse Mercator projection on the
// GRS80 ellipsoid, one instance per JGD2011 zone.
type planeRectangular struct {
	code int
	lat0 float64 // radians
	lon0 float64 // radians
	m0   float64 // meridian arc length at lat0
}

func newPlaneRectangular(code int) *planeRectangular {
	origin := zoneOrigins[code]
	lat0 := origin[0] * math.Pi / 180
	lon0 := origin[1] * math.Pi / 180
	return &planeRectangular{
		code: code,
		lat0: lat0,
		lon0: lon0,
		m0:   meridianArc(lat0),
	}
}

func (p *planeRectangular) EPSG() int { return p.code }

// FromWGS84 implements the forward transverse Mercator series (Snyder
// eq. 8-9..8-13): x easting, y northing, both in meters.
func (p *planeRectangular) FromWGS84(lon, lat float64) (float64, float64, error) {
	if math.Abs(lat) > 90 {
		return 0, 0, &ErrOutOfDomain{EPSG: p.code, X: lon, Y: lat, Reason: "latitude beyond ±90"}
	}
	lonOrigin := p.lon0 * 180 / math.Pi
	if math.Abs(lon-lonOrigin) > maxLonOffset {
		return 0, 0, &ErrOutOfDomain{
			EPSG: p.code, X: lon, Y: lat,
			Reason: "too far from the zone's central meridian",
		}
	}

	phi := lat * math.Pi / 180
	lam := lon * math.Pi / 180

	e2 := grs80F * (2 - grs80F)
	ep2 := e2 / (1 - e2)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)

	n := grs80A / math.Sqrt(1-e2*sinPhi*sinPhi)
	t := tanPhi * tanPhi
	c := ep2 * cosPhi * cosPhi
	a := cosPhi * (lam - p.lon0)
	m := meridianArc(phi)

	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	x := planeRectK0 * n * (a +
		(1-t+c)*a3/6 +
		(5-18*t+t*t+72*c-58*ep2)*a5/120)
	y := planeRectK0 * (m - p.m0 +
		n*tanPhi*(a2/2+
			(5-t+9*c+4*c*c)*a4/24+
			(61-58*t+t*t+600*c-330*ep2)*a6/720))

	if !finitePair(x, y) {
		return 0, 0, &ErrOutOfDomain{EPSG: p.code, X: lon, Y: lat, Reason: "non-finite result"}
	}
	return x, y, nil
}

// ToWGS84 implements the inverse series via the footpoint latitude.
func (p *planeRectangular) ToWGS84(x, y float64) (float64, float64, error) {
	e2 := grs80F * (2 - grs80F)
	ep2 := e2 / (1 - e2)

	m := p.m0 + y/planeRectK0
	mu := m / (grs80A * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	phi1 := mu +
		(3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu) +
		(1097*e1*e1*e1*e1/512)*math.Sin(8*mu)

	sinPhi1 := math.Sin(phi1)
	cosPhi1 := math.Cos(phi1)
	tanPhi1 := math.Tan(phi1)

	c1 := ep2 * cosPhi1 * cosPhi1
	t1 := tanPhi1 * tanPhi1
	n1 := grs80A / math.Sqrt(1-e2*sinPhi1*sinPhi1)
	r1 := grs80A * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5)
	d := x / (n1 * planeRectK0)

	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	phi := phi1 - (n1*tanPhi1/r1)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d4/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d6/720)
	lam := p.lon0 + (d-
		(1+2*t1+c1)*d3/6+
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d5/120)/cosPhi1

	lon := lam * 180 / math.Pi
	lat := phi * 180 / math.Pi
	if !finitePair(lon, lat) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return 0, 0, &ErrOutOfDomain{EPSG: p.code, X: x, Y: y, Reason: "outside the zone's valid area"}
	}
	return lon, lat, nil
}

// meridianArc is the ellipsoidal meridian arc length from the equator.
func meridianArc(phi float64) float64 {
	e2 := grs80F * (2 - grs80F)
	e4 := e2 * e2
	e6 := e4 * e2
	return grs80A * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}
