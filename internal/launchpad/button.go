package launchpad

import (
	"fmt"
	"math"
)

// Command bytes used for short messages
const (
	commandNoteOn        uint8 = 144 // 0x90, main grid and scene column
	commandControlChange uint8 = 176 // 0xB0, top control row
)

// SysEx command bytes (sent after the manufacturer header)
const (
	sysexSetRGB uint8 = 11 // 0x0B
	sysexSetAll uint8 = 14 // 0x0E
	sysexPulse  uint8 = 40 // 0x28
)

const (
	topRow       = 9
	topRowOffset = 13
)

// Output is the message channel a Button writes to.
// It is normally the Launchpad that created the button.
type Output interface {
	// Send sends a short 3-byte channel message
	Send(msg []byte) error

	// SendSysEx sends a vendor SysEx body; the implementation adds the
	// manufacturer header and framing
	SendSysEx(data []byte) error
}

// Button represents a single pad on the Launchpad.
// It holds no color state; every call is forwarded to the owner.
type Button struct {
	owner Output
	note  uint8
	x, y  int
}

// NewButton creates a button for the given note.
// Buttons are usually obtained from a Launchpad rather than built directly.
func NewButton(owner Output, note uint8) *Button {
	adjusted := int(note)
	if note > 90 {
		// Top row CCs 104-111 map onto 91-98
		adjusted -= topRowOffset
	}
	return &Button{
		owner: owner,
		note:  note,
		x:     adjusted % 10,
		y:     adjusted / 10,
	}
}

// Note returns the device-native note (or CC number) of the button
func (b *Button) Note() uint8 { return b.note }

// X returns the column of the button
func (b *Button) X() int { return b.x }

// Y returns the row of the button; 9 is the top control row
func (b *Button) Y() int { return b.y }

// String renders the button for logs, e.g. button(1,9 note=104)
func (b *Button) String() string {
	return fmt.Sprintf("button(%d,%d note=%d)", b.x, b.y, b.note)
}

// SetColor sets a static palette color (0-127).
// The top control row is addressed with Control Change, the rest with Note On.
func (b *Button) SetColor(color uint8) error {
	command := commandNoteOn
	if b.y == topRow {
		command = commandControlChange
	}
	return b.owner.Send([]byte{command, b.note, color})
}

// PulseColor makes the button pulse the given palette color.
// The animation runs on the device.
func (b *Button) PulseColor(color uint8) error {
	return b.owner.SendSysEx([]byte{sysexPulse, 0, b.note, color})
}

// SetRGBColor sets the button to an RGB color with 8-bit channels.
// Channels are rescaled to the device's 0-63 range.
func (b *Button) SetRGBColor(r, g, bl uint8) error {
	return b.owner.SendSysEx([]byte{sysexSetRGB, b.note, scaleChannel(r), scaleChannel(g), scaleChannel(bl)})
}

// Darken turns the button off.
// Always uses Note On, even for the top row.
func (b *Button) Darken() error {
	return b.owner.Send([]byte{commandNoteOn, b.note, 0})
}

// scaleChannel maps 0-255 to 0-63, rounding half away from zero
func scaleChannel(v uint8) uint8 {
	return uint8(math.Round(float64(v) * 63 / 255))
}
