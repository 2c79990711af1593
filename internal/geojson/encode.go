// Package geojson encodes feature collections as GeoJSON with 3-D
// coordinates and writes them atomically to disk.
package geojson

import (
	"fmt"

	"github.com/Yoshida088603/dxf2geojson/internal/geometry"
)

// FeatureCollection is the GeoJSON document structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	CRS      *CRS      `json:"crs,omitempty"`
	Features []Feature `json:"features"`
}

// CRS is the legacy named-CRS member identifying the collection's
// coordinate reference system.
type CRS struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
}

// Feature is a single GeoJSON feature.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry holds the type tag and positions. Coordinates is []float64 for
// points, [][]float64 for lines and [][][]float64 for polygons, each
// position as [x, y, z].
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// FromFeatureCollection converts the internal model to its GeoJSON form.
func FromFeatureCollection(fc geometry.FeatureCollection) FeatureCollection {
	out := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(fc.Features)),
	}
	if fc.EPSG != 0 {
		out.CRS = &CRS{
			Type: "name",
			Properties: map[string]string{
				"name": fmt.Sprintf("urn:ogc:def:crs:EPSG::%d", fc.EPSG),
			},
		}
	}
	for _, f := range fc.Features {
		out.Features = append(out.Features, Feature{
			Type:       "Feature",
			Geometry:   fromGeometry(f.Geometry),
			Properties: fromProperties(f.Properties),
		})
	}
	return out
}

func fromGeometry(g geometry.Geometry) Geometry {
	switch g := g.(type) {
	case geometry.Point:
		return Geometry{Type: "Point", Coordinates: position(geometry.Coordinate(g))}
	case geometry.LineString:
		return Geometry{Type: "LineString", Coordinates: positions(g)}
	case geometry.Polygon:
		rings := make([][][]float64, 0, 1+len(g.Interiors))
		rings = append(rings, positions(g.Exterior))
		for _, r := range g.Interiors {
			rings = append(rings, positions(r))
		}
		return Geometry{Type: "Polygon", Coordinates: rings}
	}
	return Geometry{}
}

func fromProperties(p geometry.Properties) map[string]interface{} {
	props := map[string]interface{}{
		"layer":   p.Layer,
		"color":   p.Color,
		"dxftype": p.DXFType,
	}
	if p.Unprojected {
		props["unprojected"] = true
	}
	if p.RepairFailed {
		props["repair_failed"] = true
	}
	return props
}

func position(c geometry.Coordinate) []float64 {
	return []float64{c.X, c.Y, c.Z}
}

func positions(coords []geometry.Coordinate) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = position(c)
	}
	return out
}
