package voxelpal

// Stats summarizes the footprint of a Compressor.
type Stats struct {
	State        State   `json:"state"`
	Diameter     int     `json:"diameter"`
	Volume       int     `json:"volume"`
	PaletteSize  int     `json:"palette_size"`
	BitWidth     int     `json:"bit_width"`
	SlotsPerWord int     `json:"slots_per_word"`
	Words        int     `json:"words"`
	RawBytes     int     `json:"raw_bytes"`
	PackedBytes  int     `json:"packed_bytes"`
	Ratio        float64 `json:"ratio"`
}

// Stats returns the current footprint.
//
// RawBytes counts two bytes per cell. PackedBytes counts the words plus two
// bytes per palette entry; a uniform grid costs the two bytes of its value.
func (c *Compressor) Stats() Stats {
	s := Stats{
		State:        c.state,
		Diameter:     c.diameter,
		Volume:       c.volume,
		PaletteSize:  c.PaletteSize(),
		BitWidth:     c.BitWidth(),
		SlotsPerWord: c.SlotsPerWord(),
		Words:        len(c.words),
		RawBytes:     c.volume * 2,
	}

	switch c.state {
	case StateUniform:
		s.PackedBytes = 2
	case StatePacked:
		s.PackedBytes = len(c.words)*8 + s.PaletteSize*2
	}

	if s.PackedBytes > 0 {
		s.Ratio = float64(s.RawBytes) / float64(s.PackedBytes)
	}
	return s
}
