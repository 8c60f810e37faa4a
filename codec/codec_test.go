package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hupe1980/voxelpal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestStatsEncoding(t *testing.T) {
	c, err := voxelpal.New(2)
	require.NoError(t, err)
	require.NoError(t, c.Encode([]uint16{0, 1, 0, 1, 0, 1, 0, 2}))
	stats := c.Stats()

	for _, cd := range []Codec{JSON{}, GoJSON{}} {
		t.Run(cd.Name(), func(t *testing.T) {
			data, err := Marshal(cd, stats)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"state":"packed"`)
			assert.Contains(t, string(data), `"palette_size":3`)
			assert.NotContains(t, string(data), "\n")

			var got map[string]any
			require.NoError(t, Unmarshal(cd, data, &got))
			assert.Equal(t, float64(2), got["bit_width"])
			assert.Equal(t, float64(1), got["words"])

			var back voxelpal.Stats
			require.NoError(t, Unmarshal(cd, data, &back))
			assert.Equal(t, stats, back)
		})
	}
}

func TestEncodeStream(t *testing.T) {
	for _, cd := range []Codec{JSON{}, GoJSON{}} {
		t.Run(cd.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, cd.Encode(&buf, map[string]int{"a": 1}))
			require.NoError(t, cd.Encode(&buf, map[string]int{"a": 2}))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, 2)

			var first, second map[string]int
			require.NoError(t, cd.Decode(strings.NewReader(lines[0]), &first))
			require.NoError(t, cd.Decode(strings.NewReader(lines[1]), &second))
			assert.Equal(t, 1, first["a"])
			assert.Equal(t, 2, second["a"])
		})
	}
}

func TestIndent(t *testing.T) {
	v := map[string]map[string]int{"outer": {"inner": 1}}
	for _, cd := range []Codec{JSON{Indent: "  "}, GoJSON{Indent: "  "}} {
		t.Run(cd.Name(), func(t *testing.T) {
			data, err := Marshal(cd, v)
			require.NoError(t, err)
			assert.Contains(t, string(data), "\n    \"inner\": 1")
		})
	}
}

func TestCodecsAgree(t *testing.T) {
	v := map[string]int{"a": 1, "b": 2}
	assert.JSONEq(t, string(MustMarshal(JSON{}, v)), string(MustMarshal(GoJSON{}, v)))
	assert.Equal(t, MustMarshal(GoJSON{}, v), MustMarshal(nil, v))
}

func TestMarshalError(t *testing.T) {
	_, err := Marshal(JSON{}, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codec json")

	assert.Panics(t, func() { MustMarshal(nil, make(chan int)) })
}

func TestUnmarshalError(t *testing.T) {
	var v map[string]any
	err := Unmarshal(GoJSON{}, []byte("{"), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codec go-json")
}
