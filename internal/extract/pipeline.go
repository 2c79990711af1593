package extract

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/Yoshida088603/dxf2geojson/internal/dxf"
	"github.com/Yoshida088603/dxf2geojson/internal/geometry"
)

// Pipeline walks a drawing's entities and accumulates features. Per-entity
// failures never escape: they are logged and the entity is dropped.
type Pipeline struct {
	builder *Builder
	log     zerolog.Logger
}

// NewPipeline wires a builder to a diagnostics sink.
func NewPipeline(builder *Builder, log zerolog.Logger) *Pipeline {
	return &Pipeline{builder: builder, log: log}
}

// Extract converts entities to features, preserving entity order. Entities
// yielding no geometry or invalid geometry are dropped without aborting.
// An empty result is returned as an empty slice; the caller decides whether
// that is fatal.
func (p *Pipeline) Extract(entities []dxf.Entity) []geometry.Feature {
	features := make([]geometry.Feature, 0, len(entities))

	for i, e := range entities {
		g, err := p.builder.Build(e)
		if err != nil {
			if errors.Is(err, ErrUnsupportedKind) {
				p.log.Debug().
					Int("entity", i).
					Str("kind", e.Kind).
					Msg("Skipping unsupported entity")
			} else {
				p.log.Warn().
					Err(err).
					Int("entity", i).
					Str("kind", e.Kind).
					Str("layer", e.Layer).
					Msg("Skipping entity")
			}
			continue
		}

		if err := geometry.Validate(g); err != nil {
			p.log.Warn().
				Err(err).
				Int("entity", i).
				Str("kind", e.Kind).
				Str("layer", e.Layer).
				Msg("Dropping invalid geometry")
			continue
		}

		features = append(features, geometry.Feature{
			Geometry: g,
			Properties: geometry.Properties{
				Layer:   e.Layer,
				Color:   e.Color,
				DXFType: e.Kind,
			},
		})
	}

	return features
}
