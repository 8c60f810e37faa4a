package codec

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// GoJSON renders documents with github.com/goccy/go-json.
type GoJSON struct {
	// Indent, when set, pretty-prints nested values with this prefix per level.
	Indent string
}

// Encode writes v as one JSON document.
func (c GoJSON) Encode(w io.Writer, v any) error {
	enc := gojson.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}
	return enc.Encode(v)
}

// Decode reads one JSON document into v.
func (GoJSON) Decode(r io.Reader, v any) error { return gojson.NewDecoder(r).Decode(v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
