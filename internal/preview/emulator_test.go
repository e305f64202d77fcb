package preview

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewEmulator(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	e := NewEmulator(app, zerolog.Nop())
	assert.Equal(t, "Launchpad Preview", e.Window().Title())

	// Spacer in place of the ninth top-row button
	assert.Nil(t, e.rects[0][Cols-1])
	assert.NotNil(t, e.rects[0][0])
	assert.NotNil(t, e.rects[Rows-1][Cols-1])
	assert.NotNil(t, e.labels)
}

func TestEmulator_PadLabels(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	e := NewEmulator(app, zerolog.Nop())

	// Control row and scene column carry a note label
	_, stacked := e.pad(0, 0, e.rects[0][0]).(*fyne.Container)
	assert.True(t, stacked)
	_, stacked = e.pad(4, Cols-1, e.rects[4][Cols-1]).(*fyne.Container)
	assert.True(t, stacked)

	// Grid pads are bare
	_, bare := e.pad(4, 4, e.rects[4][4]).(*canvas.Rectangle)
	assert.True(t, bare)
}

func TestEmulator_Paint(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	e := NewEmulator(app, zerolog.Nop())

	red := color.RGBA{R: 255, A: 255}
	e.paint(6, 5, Pad{Color: red})
	assert.Equal(t, red, e.rects[6][5].FillColor)

	e.paint(6, 5, Pad{Color: red, Pulsing: true})
	assert.NotNil(t, e.pulses[6][5])

	e.paint(6, 5, Pad{Color: color.RGBA{A: 255}})
	assert.Nil(t, e.pulses[6][5])
	assert.Equal(t, color.RGBA{A: 255}, e.rects[6][5].FillColor)

	// Spacer cell is ignored
	e.paint(0, Cols-1, Pad{Color: red})
}
