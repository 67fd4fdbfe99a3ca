package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF800040")
	require.NoError(t, err)
	assert.Equal(t, RGBA8(255, 128, 0, 64), c)
	assert.Equal(t, "#FF800040", c.Hex())

	lower, err := ParseHexColor("#ff800040")
	require.NoError(t, err)
	assert.Equal(t, c, lower)
}

func TestParseHexColorRejects(t *testing.T) {
	for _, s := range []string{"", "#FFF", "FF800040", "#FF8000", "#FF80004000", "#GG800040", "FF8000400"} {
		_, err := ParseHexColor(s)
		assert.ErrorIs(t, err, ErrInvalidColor, s)
	}
}

func TestColorShadeKeepsAlpha(t *testing.T) {
	c := RGBA8(100, 100, 100, 200).Shade(-0.05)
	assert.InDelta(t, float32(100)/255-0.05, c.R, tol)
	assert.Equal(t, float32(200)/255, c.A)
}

func TestColorRGBA8Clamps(t *testing.T) {
	r, g, b, a := Color{R: -0.2, G: 1.3, B: 0.5, A: 1}.RGBA8()
	assert.Equal(t, []uint8{0, 255, 128, 255}, []uint8{r, g, b, a})
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(RGBA8(0, 0, 255, 255))
	require.NoError(t, err)
	assert.JSONEq(t, `"#0000FFFF"`, string(data))

	var c Color
	require.NoError(t, json.Unmarshal([]byte(`"#11223344"`), &c))
	assert.Equal(t, RGBA8(0x11, 0x22, 0x33, 0x44), c)

	require.NoError(t, json.Unmarshal([]byte(`[1, 2, 3, 4]`), &c))
	assert.Equal(t, RGBA8(1, 2, 3, 4), c)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"#123"`), &c), ErrInvalidColor)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"r": 1}`), &c), ErrInvalidColor)
}
