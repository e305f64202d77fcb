package preview

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/PixPMusic/gopher-launchpad/internal/launchpad"
	"gitlab.com/gomidi/midi/v2"
)

// Rows and columns of the emulated surface
const (
	Rows = 9
	Cols = 9
)

// Pad is the emulated state of one button
type Pad struct {
	Color   color.RGBA
	Pulsing bool
}

// Grid decodes Launchpad messages into pad state.
// It implements launchpad.Output.
type Grid struct {
	mu       sync.Mutex
	pads     [Rows][Cols]Pad
	onChange func(row, col int, pad Pad)
}

// NewGrid creates a grid with every pad off.
// onChange, if set, is called after each pad update.
func NewGrid(onChange func(row, col int, pad Pad)) *Grid {
	g := &Grid{onChange: onChange}
	for row := range g.pads {
		for col := range g.pads[row] {
			g.pads[row][col] = Pad{Color: launchpad.PaletteRGB(launchpad.ColorOff)}
		}
	}
	return g
}

// Cell converts button coordinates to a grid cell.
// Row 0 is the top control row.
func Cell(x, y int) (row, col int, ok bool) {
	row, col = Rows-y, x-1
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, 0, false
	}
	return row, col, true
}

// NoteAt returns the note (or CC number) of the button drawn at a cell
func NoteAt(row, col int) (uint8, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return 0, false
	}
	if row == 0 {
		// Control row is CC 104-111, no ninth button
		if col == Cols-1 {
			return 0, false
		}
		return uint8(104 + col), true
	}
	return uint8((Rows-row)*10 + col + 1), true
}

// Pad returns the state of the pad at button coordinates x,y
func (g *Grid) Pad(x, y int) (Pad, bool) {
	row, col, ok := Cell(x, y)
	if !ok {
		return Pad{}, false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pads[row][col], true
}

// Send implements launchpad.Output for Note On and Control Change
func (g *Grid) Send(msg []byte) error {
	if len(msg) != 3 {
		return fmt.Errorf("unsupported message length %d", len(msg))
	}
	switch msg[0] {
	case 0x90, 0xB0:
		return g.set(msg[1], Pad{Color: launchpad.PaletteRGB(msg[2])})
	default:
		return fmt.Errorf("unsupported status byte 0x%02X", msg[0])
	}
}

// SendMIDI accepts raw MIDI as a device would, so a launchpad.Launchpad can
// be created on top of the grid. SysEx must carry the default header.
func (g *Grid) SendMIDI(msg midi.Message) error {
	if len(msg) == 0 || msg[0] != 0xF0 {
		return g.Send(msg)
	}
	if len(msg) < 2 || msg[len(msg)-1] != 0xF7 {
		return fmt.Errorf("unterminated sysex")
	}
	body := msg[1 : len(msg)-1]
	header := launchpad.DefaultHeader()
	if !bytes.HasPrefix(body, header) {
		return fmt.Errorf("unexpected sysex header % X", body)
	}
	return g.SendSysEx(body[len(header):])
}

// SendSysEx implements launchpad.Output for RGB, pulse and set-all bodies
func (g *Grid) SendSysEx(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty sysex")
	}
	switch {
	case data[0] == 11 && len(data) == 5:
		return g.set(data[1], Pad{Color: launchpad.ScaledRGB(data[2], data[3], data[4])})
	case data[0] == 40 && len(data) == 4:
		return g.set(data[2], Pad{Color: launchpad.PaletteRGB(data[3]), Pulsing: true})
	case data[0] == 14 && len(data) == 2:
		g.setAll(Pad{Color: launchpad.PaletteRGB(data[1])})
		return nil
	default:
		return fmt.Errorf("unsupported sysex command %d", data[0])
	}
}

func (g *Grid) set(note uint8, pad Pad) error {
	b := launchpad.NewButton(g, note)
	row, col, ok := Cell(b.X(), b.Y())
	if !ok {
		return fmt.Errorf("no pad for %s", b)
	}

	g.mu.Lock()
	g.pads[row][col] = pad
	g.mu.Unlock()

	if g.onChange != nil {
		g.onChange(row, col, pad)
	}
	return nil
}

func (g *Grid) setAll(pad Pad) {
	g.mu.Lock()
	for row := range g.pads {
		for col := range g.pads[row] {
			g.pads[row][col] = pad
		}
	}
	g.mu.Unlock()

	if g.onChange == nil {
		return
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			g.onChange(row, col, pad)
		}
	}
}
