package launchpad

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint8
		wantErr bool
	}{
		{in: "red", want: ColorRed},
		{in: " Blue ", want: ColorBlue},
		{in: "0", want: 0},
		{in: "127", want: 127},
		{in: "128", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "mauve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorNames(t *testing.T) {
	names := ColorNames()
	assert.Len(t, names, len(colorNames))
	assert.Contains(t, names, "pink")
	assert.IsNonDecreasing(t, names)
	assert.Equal(t, "blue", names[0])
}

func TestPaletteRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{A: 255}, PaletteRGB(ColorOff))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, PaletteRGB(ColorWhite))

	red := PaletteRGB(ColorRed)
	assert.Equal(t, uint8(255), red.R)
	assert.Equal(t, uint8(0), red.G)
	assert.Equal(t, uint8(0), red.B)

	blue := PaletteRGB(ColorBlue)
	assert.Greater(t, blue.B, blue.R)
	assert.Greater(t, blue.B, blue.G)

	// Dimmer steps of the same hue
	assert.Greater(t, PaletteRGB(5).R, PaletteRGB(7).R)
	assert.Greater(t, PaletteRGB(6).R, PaletteRGB(7).R)
}

func TestScaledRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 85, A: 255}, ScaledRGB(63, 0, 21))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, ScaledRGB(99, 64, 63))
}
