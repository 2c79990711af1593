package dxf

import (
	"fmt"
	"io"
	"os"
)

// Drawing holds the parsed model-space entities of one DXF file.
type Drawing struct {
	entities []Entity
}

// ModelSpace returns the model-space entities in file order.
func (d *Drawing) ModelSpace() []Entity {
	return d.entities
}

// ReadFile opens and parses one DXF file.
func ReadFile(path string) (*Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Read parses an ASCII DXF stream. Only the ENTITIES section is walked;
// entities flagged paper space (group 67) are dropped so the result is the
// drawing's model space.
func Read(r io.Reader) (*Drawing, error) {
	tags, err := readTags(r)
	if err != nil {
		return nil, err
	}

	var entities []Entity
	inEntities := false

	i := 0
	for i < len(tags) {
		t := tags[i]

		if t.Code == 0 && t.Value == "SECTION" {
			if i+1 < len(tags) && tags[i+1].Code == 2 && tags[i+1].Value == "ENTITIES" {
				inEntities = true
				i += 2
				continue
			}
			i++
			continue
		}

		if !inEntities {
			i++
			continue
		}

		switch {
		case t.Code == 0 && t.Value == "ENDSEC":
			inEntities = false
			i++
		case t.Code == 0 && t.Value == kindSeqEnd:
			// Stray SEQEND without a preceding POLYLINE.
			_, i = entityBody(tags, i+1)
		case t.Code == 0:
			entity, next, err := parseEntity(tags, i)
			if err != nil {
				return nil, err
			}
			i = next
			if entity.paperSpace {
				continue
			}
			entities = append(entities, entity)
		default:
			i++
		}
	}

	return &Drawing{entities: entities}, nil
}

// entityBody returns the tags belonging to the entity starting after a
// 0-group tag, and the index of the next 0-group tag (or len(tags)).
func entityBody(tags []Tag, start int) ([]Tag, int) {
	i := start
	for i < len(tags) && tags[i].Code != 0 {
		i++
	}
	return tags[start:i], i
}

func parseEntity(tags []Tag, start int) (Entity, int, error) {
	kind := tags[start].Value
	entity := Entity{Kind: kind, Color: ColorByLayer}

	body, i := entityBody(tags, start+1)
	if err := applyTags(&entity, body); err != nil {
		return entity, i, fmt.Errorf("%s entity: %w", kind, err)
	}

	if kind == KindPolyline {
		for i < len(tags) && tags[i].Code == 0 && tags[i].Value == kindVertex {
			var vbody []Tag
			vbody, i = entityBody(tags, i+1)
			vertex, err := parseVertex(vbody)
			if err != nil {
				return entity, i, fmt.Errorf("POLYLINE vertex: %w", err)
			}
			entity.Vertices = append(entity.Vertices, vertex)
		}
		if i < len(tags) && tags[i].Code == 0 && tags[i].Value == kindSeqEnd {
			_, i = entityBody(tags, i+1)
		}
	}

	return entity, i, nil
}

// applyTags fills entity fields from its tag body. Numeric codes are only
// interpreted for the six supported kinds; unsupported entities keep just
// their layer and color so the pipeline can report what it skips.
func applyTags(entity *Entity, body []Tag) error {
	supported := isSupported(entity.Kind)

	for _, t := range body {
		switch t.Code {
		case 8:
			entity.Layer = t.Value
			continue
		case 62:
			color, err := t.Int()
			if err != nil {
				return err
			}
			entity.Color = color
			continue
		case 67:
			flag, err := t.Int()
			if err != nil {
				return err
			}
			entity.paperSpace = flag != 0
			continue
		}

		if !supported {
			continue
		}

		switch t.Code {
		case 10, 20, 30:
			if err := applyFirstPoint(entity, t); err != nil {
				return err
			}
		case 11, 21, 31:
			if entity.Kind != KindLine {
				continue
			}
			v, err := t.Float()
			if err != nil {
				return err
			}
			switch t.Code {
			case 11:
				entity.End.X = v
			case 21:
				entity.End.Y = v
			case 31:
				entity.End.Z = v
			}
		case 38:
			if entity.Kind != KindLWPolyline {
				continue
			}
			v, err := t.Float()
			if err != nil {
				return err
			}
			entity.Elevation = v
			entity.HasElevation = true
		case 40:
			v, err := t.Float()
			if err != nil {
				return err
			}
			entity.Radius = v
		case 50:
			v, err := t.Float()
			if err != nil {
				return err
			}
			entity.StartAngle = v
		case 51:
			v, err := t.Float()
			if err != nil {
				return err
			}
			entity.EndAngle = v
		case 70:
			flags, err := t.Int()
			if err != nil {
				return err
			}
			if entity.Kind == KindLWPolyline || entity.Kind == KindPolyline {
				entity.Closed = flags&1 != 0
			}
		}
	}
	return nil
}

// applyFirstPoint routes the 10/20/30 group to the field it means for the
// entity's kind. For LWPOLYLINE a group 10 starts a new 2-D vertex; for
// POLYLINE group 30 of the header point is the entity elevation.
func applyFirstPoint(entity *Entity, t Tag) error {
	v, err := t.Float()
	if err != nil {
		return err
	}

	switch entity.Kind {
	case KindPoint:
		setVec(&entity.Location, t.Code, v)
	case KindLine:
		setVec(&entity.Start, t.Code, v)
	case KindCircle, KindArc:
		setVec(&entity.Center, t.Code, v)
	case KindLWPolyline:
		switch t.Code {
		case 10:
			entity.Vertices = append(entity.Vertices, Vertex{X: v})
		case 20:
			if len(entity.Vertices) == 0 {
				return fmt.Errorf("group 20 before group 10")
			}
			entity.Vertices[len(entity.Vertices)-1].Y = v
		}
	case KindPolyline:
		if t.Code == 30 {
			entity.Elevation = v
			entity.HasElevation = true
		}
	}
	return nil
}

func setVec(p *Vec3, code int, v float64) {
	switch code {
	case 10:
		p.X = v
	case 20:
		p.Y = v
	case 30:
		p.Z = v
	}
}

func parseVertex(body []Tag) (Vertex, error) {
	var vertex Vertex
	for _, t := range body {
		switch t.Code {
		case 10, 20, 30:
			v, err := t.Float()
			if err != nil {
				return vertex, err
			}
			switch t.Code {
			case 10:
				vertex.X = v
			case 20:
				vertex.Y = v
			case 30:
				vertex.Z = v
				vertex.HasZ = true
			}
		}
	}
	return vertex, nil
}

func isSupported(kind string) bool {
	switch kind {
	case KindPoint, KindLWPolyline, KindPolyline, KindLine, KindCircle, KindArc:
		return true
	}
	return false
}
