package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("AscendingAssignment", func(t *testing.T) {
		s, err := Build([]uint16{42, 7, 1000, 7, 3})
		require.NoError(t, err)
		require.Equal(t, 4, s.Size())
		assert.Equal(t, []uint16{3, 7, 42, 1000}, s.IDs())

		for want, id := range []uint16{3, 7, 42, 1000} {
			idx, err := s.IndexOf(id)
			require.NoError(t, err)
			assert.Equal(t, uint32(want), idx)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Build(nil)
		require.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("DoesNotModifyInput", func(t *testing.T) {
		in := []uint16{5, 1, 5}
		_, err := Build(in)
		require.NoError(t, err)
		assert.Equal(t, []uint16{5, 1, 5}, in)
	})
}

func TestRoundTripInvariant(t *testing.T) {
	ids := []uint16{0, 1, 2, 3, 9, 65535}
	s, err := Build(ids)
	require.NoError(t, err)

	for _, id := range ids {
		idx, err := s.IndexOf(id)
		require.NoError(t, err)
		got, err := s.IDAt(idx)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestIndexOfUnknown(t *testing.T) {
	s, err := Build([]uint16{1, 2})
	require.NoError(t, err)

	_, err = s.IndexOf(3)
	var unknown *ErrUnknownID
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint16(3), unknown.ID)
	assert.False(t, s.Contains(3))
	assert.True(t, s.Contains(2))

	// Lookups never grow the palette.
	assert.Equal(t, 2, s.Size())
}

func TestIDAtOutOfRange(t *testing.T) {
	s, err := Build([]uint16{1, 2})
	require.NoError(t, err)

	_, err = s.IDAt(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestIDsIsCopy(t *testing.T) {
	s, err := Build([]uint16{1, 2})
	require.NoError(t, err)

	ids := s.IDs()
	ids[0] = 99
	assert.Equal(t, []uint16{1, 2}, s.IDs())
}
