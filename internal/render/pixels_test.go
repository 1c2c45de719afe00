package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))
	FillPaletteRGBA(buf, cells, palette)
	require.Equal(t, []byte{1, 2, 3, 255, 10, 20, 30, 255, 10, 20, 30, 255}, buf)

	FillPaletteRGBA(buf, cells, nil)
	require.Equal(t, make([]byte, len(buf)), buf)
}
