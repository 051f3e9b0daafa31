// Package static renders domain data into self-describing JavaScript fallback
// modules. Each module carries a generation timestamp comment and a single
// default-exported constant holding the flattened data.
package static

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Writer struct {
	dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// WriteModule serializes data and overwrites <dir>/<name>.js with the full
// module text. Writes are whole-file; a reader sees either the old or the new
// module, never an append.
func (w *Writer) WriteModule(name string, data any) error {
	body, err := Serialize(name, data, w.now().UTC())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.dir, name+".js")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write module %s: %w", name, err)
	}

	return nil
}

// Serialize renders the module text without touching the filesystem.
func Serialize(name string, data any, generatedAt time.Time) ([]byte, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", name, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Generated fallback data. Do not edit by hand.\n")
	fmt.Fprintf(&buf, "// Timestamp: %s\n\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&buf, "const %s = %s;\n\n", name, payload)
	fmt.Fprintf(&buf, "export default %s;\n", name)
	return buf.Bytes(), nil
}

// Parse extracts the JSON payload from a serialized module. Serialize and
// Parse round-trip: the payload unmarshals back into a structure deep-equal
// to the one that was written.
func Parse(module []byte) (json.RawMessage, error) {
	start := bytes.Index(module, []byte(" = "))
	if start < 0 {
		return nil, fmt.Errorf("parse module: no exported constant found")
	}
	start += len(" = ")

	end := bytes.LastIndex(module, []byte(";\n\nexport default"))
	if end < 0 || end < start {
		return nil, fmt.Errorf("parse module: no export default terminator")
	}

	payload := module[start:end]
	if !json.Valid(payload) {
		return nil, fmt.Errorf("parse module: payload is not valid JSON")
	}
	return json.RawMessage(payload), nil
}
