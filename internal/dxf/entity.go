package dxf

// Entity kinds handled by the converter. Entities of any other kind are
// retained by the reader with layer and color only, so the pipeline can
// account for them before skipping.
const (
	KindPoint      = "POINT"
	KindLWPolyline = "LWPOLYLINE"
	KindPolyline   = "POLYLINE"
	KindLine       = "LINE"
	KindCircle     = "CIRCLE"
	KindArc        = "ARC"

	kindVertex = "VERTEX"
	kindSeqEnd = "SEQEND"
)

// ColorByLayer is the DXF default color code (inherit from layer).
const ColorByLayer = 256

// Vec3 is a 3-D point as stored in the drawing's coordinate system.
type Vec3 struct {
	X, Y, Z float64
}

// Vertex is one polyline vertex. HasZ distinguishes a vertex that carries
// its own elevation (group 30 present on a POLYLINE VERTEX) from a flat
// LWPOLYLINE vertex that inherits the entity elevation.
type Vertex struct {
	X, Y, Z float64
	HasZ    bool
}

// Entity is a single drawing-exchange record. Kind selects which of the
// kind-specific fields are meaningful.
type Entity struct {
	Kind  string
	Layer string
	Color int

	Location Vec3 // POINT

	Start Vec3 // LINE
	End   Vec3

	Center     Vec3 // CIRCLE, ARC
	Radius     float64
	StartAngle float64 // degrees, counter-clockwise
	EndAngle   float64

	Vertices     []Vertex // LWPOLYLINE, POLYLINE
	Elevation    float64
	HasElevation bool
	Closed       bool

	paperSpace bool
}
