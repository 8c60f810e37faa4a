// Package codec renders reports and stats for the demo command and for
// callers that ship footprint reports elsewhere.
//
// Codecs are stream oriented: Encode writes exactly one document followed
// by a newline, so reports can be appended to a log or a pipe.
package codec

import (
	"bytes"
	"fmt"
	"io"
)

// Codec writes and reads one document per call.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(w io.Writer, v any) error
	Decode(r io.Reader, v any) error
	Name() string
}

// Default is the codec used when none is selected.
var Default Codec = GoJSON{}

// Names lists the built-in codec names accepted by ByName.
func Names() []string { return []string{"json", "go-json"} }

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Marshal encodes v with c into a byte slice without the trailing newline.
// A nil codec means Default.
func Marshal(c Codec, v any) ([]byte, error) {
	if c == nil {
		c = Default
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, v); err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes data with c. A nil codec means Default.
func Unmarshal(c Codec, data []byte, v any) error {
	if c == nil {
		c = Default
	}
	if err := c.Decode(bytes.NewReader(data), v); err != nil {
		return fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return nil
}

// MustMarshal is a helper for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	b, err := Marshal(c, v)
	if err != nil {
		panic(err)
	}
	return b
}
