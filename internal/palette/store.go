package palette

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmpty is returned when building a palette from no IDs.
	ErrEmpty = errors.New("palette: no ids")

	// ErrIndexOutOfRange is returned by IDAt for an index >= Size.
	ErrIndexOutOfRange = errors.New("palette: index out of range")
)

// ErrUnknownID is returned by IndexOf when the ID was not present at build time.
type ErrUnknownID struct {
	ID uint16
}

func (e *ErrUnknownID) Error() string {
	return fmt.Sprintf("palette: unknown id %d", e.ID)
}

// Store maps IDs to indices and back.
type Store struct {
	ids     []uint16          // index -> id, ascending
	indices map[uint16]uint32 // id -> index
}

// Build assigns indices 0..k-1 to ids in ascending order.
// Duplicates are collapsed; the input slice is not modified.
func Build(ids []uint16) (*Store, error) {
	if len(ids) == 0 {
		return nil, ErrEmpty
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	s := &Store{
		ids:     sorted,
		indices: make(map[uint16]uint32, len(sorted)),
	}
	for i, id := range sorted {
		s.indices[id] = uint32(i)
	}
	return s, nil
}

// Size returns the number of distinct IDs.
func (s *Store) Size() int {
	return len(s.ids)
}

// IDAt returns the ID assigned to index.
func (s *Store) IDAt(index uint32) (uint16, error) {
	if uint64(index) >= uint64(len(s.ids)) {
		return 0, ErrIndexOutOfRange
	}
	return s.ids[index], nil
}

// IndexOf returns the index assigned to id.
func (s *Store) IndexOf(id uint16) (uint32, error) {
	idx, ok := s.indices[id]
	if !ok {
		return 0, &ErrUnknownID{ID: id}
	}
	return idx, nil
}

// Contains reports whether id is part of the palette.
func (s *Store) Contains(id uint16) bool {
	_, ok := s.indices[id]
	return ok
}

// IDs returns a copy of the palette in index order.
func (s *Store) IDs() []uint16 {
	return slices.Clone(s.ids)
}
