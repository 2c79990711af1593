package geojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// Write marshals the collection and writes it to path through a uniquely
// named temp file in the same directory, renamed into place on success.
// A failed run never leaves a partial output file behind. With compact set
// the document is minified instead of indented.
func Write(path string, fc FeatureCollection, compact bool) error {
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}

	if compact {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)
		var buf bytes.Buffer
		if err := m.Minify("application/json", &buf, bytes.NewReader(data)); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
