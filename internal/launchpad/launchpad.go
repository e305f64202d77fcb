package launchpad

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/gomidi/midi/v2"
)

var mk2Header = [...]byte{0x00, 0x20, 0x29, 0x02, 0x18}

// DefaultHeader returns the SysEx header of the Launchpad MK2: 00 20 29 02 18
func DefaultHeader() []byte {
	return append([]byte(nil), mk2Header[:]...)
}

// First and last CC of the top control row
const (
	topRowFirstCC uint8 = 104
	topRowLastCC  uint8 = 111
)

// Launchpad owns the button grid of one device and the send function
// used to reach it.
type Launchpad struct {
	send    func(midi.Message) error
	header  []byte
	log     zerolog.Logger
	buttons map[uint8]*Button
}

// Option configures a Launchpad
type Option func(*Launchpad)

// WithLogger sets the logger used for outgoing messages
func WithLogger(log zerolog.Logger) Option {
	return func(lp *Launchpad) {
		lp.log = log
	}
}

// WithHeader overrides the SysEx manufacturer/model header
func WithHeader(header []byte) Option {
	return func(lp *Launchpad) {
		if len(header) > 0 {
			lp.header = append([]byte(nil), header...)
		}
	}
}

// New creates a Launchpad that writes through send, typically the
// function returned by midi.SendTo.
func New(send func(midi.Message) error, opts ...Option) *Launchpad {
	lp := &Launchpad{
		send:    send,
		header:  DefaultHeader(),
		log:     zerolog.Nop(),
		buttons: make(map[uint8]*Button),
	}
	for _, opt := range opts {
		opt(lp)
	}

	// Grid and scene column: rows 1-8, columns 1-9
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 9; x++ {
			note := uint8(y*10 + x)
			lp.buttons[note] = NewButton(lp, note)
		}
	}
	// Top control row
	for cc := topRowFirstCC; cc <= topRowLastCC; cc++ {
		lp.buttons[cc] = NewButton(lp, cc)
	}

	return lp
}

// Buttons returns every button in ascending note order
func (lp *Launchpad) Buttons() []*Button {
	buttons := make([]*Button, 0, len(lp.buttons))
	for _, b := range lp.buttons {
		buttons = append(buttons, b)
	}
	sort.Slice(buttons, func(i, j int) bool {
		return buttons[i].note < buttons[j].note
	})
	return buttons
}

// Button returns the button at x,y
func (lp *Launchpad) Button(x, y int) (*Button, bool) {
	for _, b := range lp.buttons {
		if b.x == x && b.y == y {
			return b, true
		}
	}
	return nil, false
}

// ButtonByNote returns the button with the given note or CC number
func (lp *Launchpad) ButtonByNote(note uint8) (*Button, bool) {
	b, ok := lp.buttons[note]
	return b, ok
}

// Send implements Output
func (lp *Launchpad) Send(msg []byte) error {
	lp.log.Debug().Hex("bytes", msg).Msg("send short message")
	if err := lp.send(midi.Message(msg)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendSysEx implements Output
func (lp *Launchpad) SendSysEx(data []byte) error {
	body := make([]byte, 0, len(lp.header)+len(data))
	body = append(body, lp.header...)
	body = append(body, data...)

	lp.log.Debug().Hex("bytes", body).Msg("send sysex")
	if err := lp.send(midi.SysEx(body)); err != nil {
		return fmt.Errorf("failed to send sysex: %w", err)
	}
	return nil
}

// SetAll sets every pad to one palette color
func (lp *Launchpad) SetAll(color uint8) error {
	return lp.SendSysEx([]byte{sysexSetAll, color})
}

// Clear darkens every button, stopping at the first error
func (lp *Launchpad) Clear() error {
	for _, b := range lp.Buttons() {
		if err := b.Darken(); err != nil {
			return fmt.Errorf("failed to clear %s: %w", b, err)
		}
	}
	return nil
}
