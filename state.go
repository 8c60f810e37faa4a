package voxelpal

import "fmt"

// State is the structural state of a Compressor.
//
// A Compressor moves from StateEmpty to exactly one of the encoded states
// and never leaves it.
type State uint8

const (
	// StateEmpty means Encode has not succeeded yet.
	StateEmpty State = iota
	// StateUniform means every cell holds the same ID. No palette or words are kept.
	StateUniform
	// StatePacked means the grid is stored as a palette plus packed words.
	StatePacked
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateUniform:
		return "uniform"
	case StatePacked:
		return "packed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Encoded reports whether the state holds grid data.
func (s State) Encoded() bool {
	return s != StateEmpty
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*s = StateEmpty
	case "uniform":
		*s = StateUniform
	case "packed":
		*s = StatePacked
	default:
		return fmt.Errorf("unknown state %q", text)
	}
	return nil
}
