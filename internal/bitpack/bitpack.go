package bitpack

import (
	"errors"
	"math/bits"
)

// WordBits is the width of one packed word.
const WordBits = 64

var (
	// ErrSlotOutOfRange is returned when a slot maps to a word past the end of the stream.
	ErrSlotOutOfRange = errors.New("bitpack: slot out of range")

	// ErrInvalidBitWidth is returned for widths outside [1, 64].
	ErrInvalidBitWidth = errors.New("bitpack: invalid bit width")

	// ErrValueTooWide is returned when a value does not fit in the configured width.
	ErrValueTooWide = errors.New("bitpack: value exceeds bit width")
)

// BitWidth returns the number of bits needed to address a palette of the given size.
// Sizes 0 and 1 still use one bit.
func BitWidth(paletteSize int) int {
	if paletteSize <= 1 {
		return 1
	}
	return bits.Len(uint(paletteSize - 1))
}

// SlotsPerWord returns floor(64 / bitWidth).
func SlotsPerWord(bitWidth int) int {
	return WordBits / bitWidth
}

// WordCount returns the number of words needed to hold count slots.
func WordCount(count, bitWidth int) int {
	spw := SlotsPerWord(bitWidth)
	return (count + spw - 1) / spw
}

// Layout caches the derived quantities for one bit width.
// The zero value is not usable; build it with NewLayout.
type Layout struct {
	width int
	slots int
	mask  uint64
}

// NewLayout returns the layout for a fixed bit width.
func NewLayout(bitWidth int) (Layout, error) {
	if bitWidth < 1 || bitWidth > WordBits {
		return Layout{}, ErrInvalidBitWidth
	}
	mask := ^uint64(0)
	if bitWidth < WordBits {
		mask = uint64(1)<<bitWidth - 1
	}
	return Layout{
		width: bitWidth,
		slots: SlotsPerWord(bitWidth),
		mask:  mask,
	}, nil
}

// LayoutForPalette is shorthand for NewLayout(BitWidth(paletteSize)).
func LayoutForPalette(paletteSize int) Layout {
	l, _ := NewLayout(BitWidth(paletteSize))
	return l
}

// BitWidth returns the field width in bits.
func (l Layout) BitWidth() int { return l.width }

// SlotsPerWord returns the number of fields per word.
func (l Layout) SlotsPerWord() int { return l.slots }

// Mask returns the unshifted field mask.
func (l Layout) Mask() uint64 { return l.mask }

// Locate returns the word index and bit offset of a slot.
func (l Layout) Locate(slot int) (word int, shift uint) {
	return slot / l.slots, uint((slot % l.slots) * l.width)
}

// Words returns the number of words needed to hold count slots.
func (l Layout) Words(count int) int {
	return (count + l.slots - 1) / l.slots
}

// Pack packs indices into words. A trailing partially filled word is emitted
// when it holds at least one index. Values wider than the layout are rejected.
func (l Layout) Pack(indices []uint32) ([]uint64, error) {
	words := make([]uint64, l.Words(len(indices)))
	for i, idx := range indices {
		v := uint64(idx)
		if v&^l.mask != 0 {
			return nil, ErrValueTooWide
		}
		w, shift := l.Locate(i)
		words[w] |= v << shift
	}
	return words, nil
}

// Unpack extracts exactly count indices, appending them to dst.
// Padding slots past count are never emitted.
func (l Layout) Unpack(dst []uint32, words []uint64, count int) ([]uint32, error) {
	if l.Words(count) > len(words) {
		return dst, ErrSlotOutOfRange
	}
	for _, word := range words {
		for s := 0; s < l.slots && count > 0; s++ {
			dst = append(dst, uint32(word>>(uint(s*l.width))&l.mask))
			count--
		}
		if count == 0 {
			break
		}
	}
	return dst, nil
}

// ReadAt returns the index stored at slot without decoding the stream.
func (l Layout) ReadAt(words []uint64, slot int) (uint32, error) {
	if slot < 0 {
		return 0, ErrSlotOutOfRange
	}
	w, shift := l.Locate(slot)
	if w >= len(words) {
		return 0, ErrSlotOutOfRange
	}
	return uint32(words[w] >> shift & l.mask), nil
}

// WriteAt overwrites the index stored at slot in place.
// On error the words are left untouched.
func (l Layout) WriteAt(words []uint64, slot int, index uint32) error {
	if slot < 0 {
		return ErrSlotOutOfRange
	}
	v := uint64(index)
	if v&^l.mask != 0 {
		return ErrValueTooWide
	}
	w, shift := l.Locate(slot)
	if w >= len(words) {
		return ErrSlotOutOfRange
	}
	words[w] = words[w]&^(l.mask<<shift) | v<<shift
	return nil
}

// Pack packs indices with the given bit width.
func Pack(indices []uint32, bitWidth int) ([]uint64, error) {
	l, err := NewLayout(bitWidth)
	if err != nil {
		return nil, err
	}
	return l.Pack(indices)
}

// Unpack extracts count indices packed with the given bit width.
func Unpack(words []uint64, bitWidth, count int) ([]uint32, error) {
	l, err := NewLayout(bitWidth)
	if err != nil {
		return nil, err
	}
	return l.Unpack(make([]uint32, 0, count), words, count)
}

// ReadAt reads one slot packed with the given bit width.
func ReadAt(words []uint64, bitWidth, slot int) (uint32, error) {
	l, err := NewLayout(bitWidth)
	if err != nil {
		return 0, err
	}
	return l.ReadAt(words, slot)
}

// WriteAt writes one slot packed with the given bit width.
func WriteAt(words []uint64, bitWidth, slot int, index uint32) error {
	l, err := NewLayout(bitWidth)
	if err != nil {
		return err
	}
	return l.WriteAt(words, slot, index)
}
