package preview

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const pulsePeriod = 500 * time.Millisecond

// Emulator is an on-screen Launchpad.
// It implements launchpad.Output through its embedded Grid.
type Emulator struct {
	*Grid

	window fyne.Window
	log    zerolog.Logger
	labels *noteLabeler
	rects  [Rows][Cols]*canvas.Rectangle
	pulses [Rows][Cols]*fyne.Animation
}

// NewEmulator creates the emulator window on app
func NewEmulator(app fyne.App, log zerolog.Logger) *Emulator {
	e := &Emulator{
		window: app.NewWindow("Launchpad Preview"),
		log:    log,
	}
	e.Grid = NewGrid(func(row, col int, pad Pad) {
		fyne.Do(func() {
			e.paint(row, col, pad)
		})
	})

	labels, err := newNoteLabeler(theme.DefaultTextFont().Content())
	if err != nil {
		log.Warn().Err(err).Msg("failed to load label font, pads will be unlabelled")
	} else {
		e.labels = labels
	}

	e.window.SetContent(e.createContent())
	e.window.Resize(fyne.NewSize(520, 520))
	e.window.CenterOnScreen()
	return e
}

// Window returns the emulator window
func (e *Emulator) Window() fyne.Window {
	return e.window
}

func (e *Emulator) createContent() fyne.CanvasObject {
	grid := container.NewGridWithColumns(Cols)

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			// Top row has no ninth button
			if row == 0 && col == Cols-1 {
				grid.Add(emptyCell())
				continue
			}

			rect := canvas.NewRectangle(color.RGBA{A: 255})
			rect.SetMinSize(fyne.NewSize(40, 40))
			rect.CornerRadius = 4
			if row == 0 || col == Cols-1 {
				// Round buttons for the control row and scene column
				rect.CornerRadius = 20
			}
			e.rects[row][col] = rect
			grid.Add(e.pad(row, col, rect))
		}
	}

	header := widget.NewLabelWithStyle("Launchpad", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	return container.NewBorder(header, nil, nil, nil, grid)
}

// pad stacks the note label over the control row and scene column buttons
func (e *Emulator) pad(row, col int, rect *canvas.Rectangle) fyne.CanvasObject {
	note, ok := NoteAt(row, col)
	if !ok || e.labels == nil || (row != 0 && col != Cols-1) {
		return rect
	}
	return container.NewStack(rect, container.NewCenter(e.labels.padLabel(note)))
}

func emptyCell() fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(40, 40))
	return spacer
}

// paint must run on the fyne thread
func (e *Emulator) paint(row, col int, pad Pad) {
	rect := e.rects[row][col]
	if rect == nil {
		return
	}

	if anim := e.pulses[row][col]; anim != nil {
		anim.Stop()
		e.pulses[row][col] = nil
	}

	if !pad.Pulsing {
		rect.FillColor = pad.Color
		rect.Refresh()
		return
	}

	anim := canvas.NewColorRGBAAnimation(color.RGBA{A: 255}, pad.Color, pulsePeriod, func(c color.Color) {
		rect.FillColor = c
		rect.Refresh()
	})
	anim.AutoReverse = true
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Start()
	e.pulses[row][col] = anim
}
