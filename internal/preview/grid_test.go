package preview

import (
	"image/color"
	"testing"

	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	row, col int
	pad      Pad
}

func TestCell(t *testing.T) {
	row, col, ok := Cell(1, 9)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col, ok = Cell(9, 1)
	require.True(t, ok)
	assert.Equal(t, 8, row)
	assert.Equal(t, 8, col)

	_, _, ok = Cell(0, 5)
	assert.False(t, ok)
	_, _, ok = Cell(5, 0)
	assert.False(t, ok)
}

func TestGrid_DrivenByButtons(t *testing.T) {
	var changes []change
	g := NewGrid(func(row, col int, pad Pad) {
		changes = append(changes, change{row, col, pad})
	})

	// The grid is the Output of buttons built on it
	b := launchpad.NewButton(g, 36)
	require.NoError(t, b.SetColor(launchpad.ColorRed))

	pad, ok := g.Pad(6, 3)
	require.True(t, ok)
	assert.Equal(t, launchpad.PaletteRGB(launchpad.ColorRed), pad.Color)
	assert.False(t, pad.Pulsing)

	require.NoError(t, b.PulseColor(launchpad.ColorBlue))
	pad, _ = g.Pad(6, 3)
	assert.True(t, pad.Pulsing)
	assert.Equal(t, launchpad.PaletteRGB(launchpad.ColorBlue), pad.Color)

	require.NoError(t, b.SetRGBColor(255, 0, 0))
	pad, _ = g.Pad(6, 3)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, pad.Color)
	assert.False(t, pad.Pulsing)

	require.NoError(t, b.Darken())
	pad, _ = g.Pad(6, 3)
	assert.Equal(t, color.RGBA{A: 255}, pad.Color)

	require.Len(t, changes, 4)
	assert.Equal(t, 6, changes[0].row)
	assert.Equal(t, 5, changes[0].col)
}

func TestGrid_TopRow(t *testing.T) {
	g := NewGrid(nil)
	b := launchpad.NewButton(g, 104)

	require.NoError(t, b.SetColor(launchpad.ColorGreen))
	pad, ok := g.Pad(1, 9)
	require.True(t, ok)
	assert.Equal(t, launchpad.PaletteRGB(launchpad.ColorGreen), pad.Color)
}

func TestGrid_SetAll(t *testing.T) {
	count := 0
	g := NewGrid(func(int, int, Pad) { count++ })

	require.NoError(t, g.SendSysEx([]byte{14, launchpad.ColorWhite}))
	assert.Equal(t, Rows*Cols, count)

	pad, _ := g.Pad(4, 4)
	assert.Equal(t, launchpad.PaletteRGB(launchpad.ColorWhite), pad.Color)
}

func TestGrid_RejectsUnknownMessages(t *testing.T) {
	g := NewGrid(nil)

	assert.Error(t, g.Send([]byte{0x80, 36, 0}))
	assert.Error(t, g.Send([]byte{0x90, 36}))
	assert.Error(t, g.Send([]byte{0x90, 5, 1}))
	assert.Error(t, g.SendSysEx(nil))
	assert.Error(t, g.SendSysEx([]byte{99, 1}))
	assert.Error(t, g.SendSysEx([]byte{11, 36, 1}))
}

func TestGrid_SendMIDI(t *testing.T) {
	g := NewGrid(nil)
	lp := launchpad.New(g.SendMIDI)

	b, ok := lp.Button(2, 2)
	require.True(t, ok)
	require.NoError(t, b.PulseColor(launchpad.ColorYellow))

	pad, _ := g.Pad(2, 2)
	assert.True(t, pad.Pulsing)

	require.NoError(t, lp.SetAll(launchpad.ColorRed))
	pad, _ = g.Pad(9, 8)
	assert.Equal(t, launchpad.PaletteRGB(launchpad.ColorRed), pad.Color)

	require.NoError(t, lp.Clear())
	pad, _ = g.Pad(9, 8)
	assert.Equal(t, color.RGBA{A: 255}, pad.Color)

	assert.Error(t, g.SendMIDI([]byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x10, 14, 0, 0xF7}))
	assert.Error(t, g.SendMIDI([]byte{0xF0, 0x00}))
}

func TestNoteAt_MatchesButtonCoordinates(t *testing.T) {
	g := NewGrid(nil)
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			note, ok := NoteAt(row, col)
			if !ok {
				continue
			}
			count++
			b := launchpad.NewButton(g, note)
			gotRow, gotCol, ok := Cell(b.X(), b.Y())
			require.True(t, ok, "note %d", note)
			assert.Equal(t, row, gotRow, "note %d", note)
			assert.Equal(t, col, gotCol, "note %d", note)
		}
	}
	assert.Equal(t, 80, count)

	_, ok := NoteAt(0, Cols-1)
	assert.False(t, ok)
	_, ok = NoteAt(Rows, 0)
	assert.False(t, ok)
}
