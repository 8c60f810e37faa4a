package voxelpal

import (
	"errors"
	"fmt"

	"github.com/hupe1980/voxelpal/internal/bitpack"
	"github.com/hupe1980/voxelpal/internal/palette"
)

var (
	// ErrEmptyInput is returned when Encode is called with no cells.
	ErrEmptyInput = errors.New("empty input")

	// ErrAlreadyEncoded is returned when Encode is called on an encoded instance.
	ErrAlreadyEncoded = errors.New("already encoded")

	// ErrUnknownValue is returned when Set writes a value that is not in the palette.
	// The palette is fixed at encode time; re-encode the grid to add new values.
	ErrUnknownValue = errors.New("value not in palette")

	// ErrIndexOutOfRange is returned for coordinates or word positions beyond the grid.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotEncoded is returned when reading or writing an instance before Encode.
	ErrNotEncoded = errors.New("not encoded")
)

// ErrInvalidDiameter indicates a diameter outside [1, MaxDiameter].
type ErrInvalidDiameter struct {
	Diameter int
}

func (e *ErrInvalidDiameter) Error() string {
	return fmt.Sprintf("invalid diameter: %d (must be in [1, %d])", e.Diameter, MaxDiameter)
}

// ErrGridSizeMismatch indicates a flat grid whose length is not diameter³.
//
// It unwraps to ErrIndexOutOfRange.
type ErrGridSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrGridSizeMismatch) Error() string {
	return fmt.Sprintf("grid size mismatch: expected %d cells, got %d", e.Expected, e.Actual)
}

func (e *ErrGridSizeMismatch) Unwrap() error { return ErrIndexOutOfRange }

// ErrCoordinateOutOfRange indicates a coordinate outside [0, Diameter).
//
// It unwraps to ErrIndexOutOfRange.
type ErrCoordinateOutOfRange struct {
	X, Y, Z  uint8
	Diameter int
}

func (e *ErrCoordinateOutOfRange) Error() string {
	return fmt.Sprintf("coordinate (%d, %d, %d) out of range for diameter %d", e.X, e.Y, e.Z, e.Diameter)
}

func (e *ErrCoordinateOutOfRange) Unwrap() error { return ErrIndexOutOfRange }

// translateError maps internal package errors onto the public sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var unknown *palette.ErrUnknownID
	if errors.As(err, &unknown) {
		return fmt.Errorf("%w: %w", ErrUnknownValue, err)
	}
	if errors.Is(err, palette.ErrEmpty) {
		return fmt.Errorf("%w: %w", ErrEmptyInput, err)
	}
	if errors.Is(err, palette.ErrIndexOutOfRange) ||
		errors.Is(err, bitpack.ErrSlotOutOfRange) ||
		errors.Is(err, bitpack.ErrValueTooWide) {
		return fmt.Errorf("%w: %w", ErrIndexOutOfRange, err)
	}

	return err
}
