// Package processor runs one DXF to GeoJSON conversion end-to-end.
package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Yoshida088603/dxf2geojson/internal/dxf"
	"github.com/Yoshida088603/dxf2geojson/internal/extract"
	"github.com/Yoshida088603/dxf2geojson/internal/geojson"
	"github.com/Yoshida088603/dxf2geojson/internal/geometry"
	"github.com/Yoshida088603/dxf2geojson/internal/proj"
	"github.com/Yoshida088603/dxf2geojson/internal/repair"
)

// ErrNoFeatures indicates a drawing from which no convertible geometry
// survived extraction.
var ErrNoFeatures = errors.New("no convertible geometry found")

// Options configures one conversion run.
type Options struct {
	SourceEPSG int
	TargetEPSG int
	ArcStep    float64
	Compact    bool
	Force      bool
}

// OutputPath is the destination for a converted drawing:
// <input without extension>_epsg<target>.geojson next to the input.
func OutputPath(input string, targetEPSG int) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s_epsg%d.geojson", base, targetEPSG)
}

// Process converts one drawing file: read, extract, reproject, repair,
// write. Per-feature reprojection and repair failures are logged and
// flagged on the feature; an unreadable drawing, an unresolvable
// coordinate system or an empty extraction result abort the run and no
// output is written.
func Process(path string, opts Options) error {
	outPath := OutputPath(path, opts.TargetEPSG)
	if _, err := os.Stat(outPath); err == nil && !opts.Force {
		log.Debug().Str("file", path).Str("output", outPath).Msg("Output exists, skipping")
		return nil
	}

	transform, err := proj.NewTransform(opts.SourceEPSG, opts.TargetEPSG)
	if err != nil {
		return err
	}

	drawing, err := dxf.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read drawing: %w", err)
	}
	entities := drawing.ModelSpace()

	log.Info().
		Str("file", path).
		Int("entities", len(entities)).
		Int("source_epsg", opts.SourceEPSG).
		Int("target_epsg", opts.TargetEPSG).
		Msg("Processing drawing")

	pipeline := extract.NewPipeline(extract.NewBuilder(opts.ArcStep), log.Logger)
	features := pipeline.Extract(entities)
	if len(features) == 0 {
		return fmt.Errorf("%s: %w", path, ErrNoFeatures)
	}

	for i := range features {
		features[i] = convertFeature(transform, features[i])
	}

	fc := geometry.FeatureCollection{EPSG: opts.TargetEPSG, Features: features}
	if err := geojson.Write(outPath, geojson.FromFeatureCollection(fc), opts.Compact); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info().
		Str("file", path).
		Str("output", outPath).
		Int("features", len(features)).
		Msg("Drawing converted")
	return nil
}

// convertFeature reprojects and repairs one feature. A transform failure
// keeps the source coordinates and marks the feature instead of dropping
// it, so one bad feature never invalidates the rest of the output.
func convertFeature(transform *proj.Transform, f geometry.Feature) geometry.Feature {
	transformed, err := transform.Geometry(f.Geometry)
	if err != nil {
		log.Warn().
			Err(err).
			Str("layer", f.Properties.Layer).
			Str("kind", f.Properties.DXFType).
			Msg("Reprojection failed, keeping source coordinates")
		f.Properties.Unprojected = true
	} else {
		f.Geometry = transformed
	}

	repaired, clean := repair.Normalize(f.Geometry)
	f.Geometry = repaired
	if !clean {
		log.Warn().
			Str("layer", f.Properties.Layer).
			Str("kind", f.Properties.DXFType).
			Msg("Geometry repair incomplete, keeping best-effort result")
		f.Properties.RepairFailed = true
	}

	return f
}
