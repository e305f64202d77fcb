package launchpad

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common palette indices
const (
	ColorOff    uint8 = 0
	ColorWhite  uint8 = 3
	ColorRed    uint8 = 5
	ColorOrange uint8 = 9
	ColorYellow uint8 = 13
	ColorGreen  uint8 = 21
	ColorCyan   uint8 = 37
	ColorBlue   uint8 = 45
	ColorPurple uint8 = 53
	ColorPink   uint8 = 57
)

var colorNames = map[string]uint8{
	"off":    ColorOff,
	"white":  ColorWhite,
	"red":    ColorRed,
	"orange": ColorOrange,
	"yellow": ColorYellow,
	"green":  ColorGreen,
	"cyan":   ColorCyan,
	"blue":   ColorBlue,
	"purple": ColorPurple,
	"pink":   ColorPink,
}

// ColorNames returns the known palette names in alphabetical order
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for name := range colorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor resolves a palette name or a decimal code (0-127)
func ParseColor(s string) (uint8, error) {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > 127 {
		return 0, fmt.Errorf("invalid color %q: expected a name or 0-127", s)
	}
	return uint8(n), nil
}

// PaletteRGB approximates the on-device color of a palette index.
// Indices 4-63 are 15 hues with four brightness steps each; the
// rest are rendered as neutral shades.
func PaletteRGB(code uint8) color.RGBA {
	switch {
	case code == 0:
		return color.RGBA{A: 255}
	case code <= 3:
		v := uint8(85 * int(code))
		return color.RGBA{R: v, G: v, B: v, A: 255}
	case code <= 63:
		hue := float64((code-4)/4) * 24
		sat, val := 1.0, 1.0
		switch (code - 4) % 4 {
		case 0:
			sat = 0.5
		case 2:
			val = 0.6
		case 3:
			val = 0.3
		}
		r, g, b := colorful.Hsv(hue, sat, val).RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	default:
		v := uint8(64 + int(code-64)*2)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
}

// ScaledRGB converts a 0-63 device RGB triple back to 8-bit color
func ScaledRGB(r, g, b uint8) color.RGBA {
	expand := func(v uint8) uint8 {
		if v > 63 {
			v = 63
		}
		return uint8(int(v) * 255 / 63)
	}
	return color.RGBA{R: expand(r), G: expand(g), B: expand(b), A: 255}
}
