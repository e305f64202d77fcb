package midi

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
)

// ErrPortNotFound is returned when no output port matches a name
var ErrPortNotFound = errors.New("output port not found")

// Manager handles MIDI output port discovery
type Manager struct {
	mu       sync.RWMutex
	outPorts func() midi.OutPorts
}

// NewManager creates a new MIDI manager using the registered driver
func NewManager() *Manager {
	return &Manager{outPorts: midi.GetOutPorts}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListOutPorts returns the names of available MIDI output ports
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := m.outPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// OpenOut opens the output port matching name and returns its send function.
// An exact match wins; otherwise the first port whose name contains name
// (case-insensitive) is used.
func (m *Manager) OpenOut(name string) (func(midi.Message) error, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	outs := m.outPorts()
	names := make([]string, len(outs))
	for i, out := range outs {
		names[i] = out.String()
	}

	idx, ok := matchPort(names, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPortNotFound, name)
	}

	send, err := midi.SendTo(outs[idx])
	if err != nil {
		return nil, fmt.Errorf("failed to create sender: %w", err)
	}
	return send, nil
}

func matchPort(names []string, want string) (int, bool) {
	if want == "" {
		return -1, false
	}
	for i, name := range names {
		if name == want {
			return i, true
		}
	}
	lower := strings.ToLower(want)
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			return i, true
		}
	}
	return -1, false
}
