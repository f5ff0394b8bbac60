package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"tiltone/debug"
)

// Virtual/system ports that are never auto-connected.
var excludedPortPatterns = []string{"Midi Through", "Through Port", "Dummy"}

// OutputManager keeps a connection to a MIDI output port, handling
// hot-plug: it connects when a suitable port appears and drops the
// sender when the port disappears. Send is safe to call at any time;
// messages are dropped while no port is connected.
type OutputManager struct {
	mu        sync.RWMutex
	preferred string // case-insensitive substring; "" = first usable port
	portName  string
	send      func(gomidi.Message) error
	pollRate  time.Duration
}

// NewOutputManager creates a manager that prefers ports whose name
// contains the given pattern.
func NewOutputManager(preferred string) *OutputManager {
	return &OutputManager{
		preferred: preferred,
		pollRate:  time.Second,
	}
}

// PortName returns the connected port's name, or "" when disconnected.
func (om *OutputManager) PortName() string {
	om.mu.RLock()
	defer om.mu.RUnlock()
	return om.portName
}

// Send implements Sender. Messages map onto the standard channel-0
// note messages; anything else is dropped.
func (om *OutputManager) Send(command, note, velocity uint8) {
	om.mu.RLock()
	send := om.send
	om.mu.RUnlock()
	if send == nil {
		return
	}

	var msg gomidi.Message
	switch command {
	case NoteOn:
		msg = gomidi.NoteOn(0, note, velocity)
	case NoteOff:
		msg = gomidi.NoteOff(0, note)
	default:
		return
	}
	if err := send(msg); err != nil {
		debug.Log("midi", "send failed on %s: %v", om.PortName(), err)
	}
}

// Run starts the polling loop (blocking - run in goroutine).
func (om *OutputManager) Run(ctx context.Context) {
	ticker := time.NewTicker(om.pollRate)
	defer ticker.Stop()

	om.scan()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			om.scan()
		}
	}
}

func (om *OutputManager) scan() {
	// Enumerate ports with a timeout (CoreMIDI can hang).
	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()

	var outPorts []drivers.Out
	select {
	case outPorts = <-ch:
	case <-time.After(3 * time.Second):
		return // skip this scan
	}

	om.mu.Lock()
	defer om.mu.Unlock()

	if om.send != nil {
		// Verify the connected port is still present.
		for _, p := range outPorts {
			if p.String() == om.portName {
				return
			}
		}
		debug.Log("midi", "output port disappeared: %s", om.portName)
		om.send = nil
		om.portName = ""
	}

	port := pickOutPort(outPorts, om.preferred)
	if port == nil {
		return
	}
	send, err := gomidi.SendTo(port)
	if err != nil {
		debug.Log("midi", "open %s failed: %v", port.String(), err)
		return
	}
	om.send = send
	om.portName = port.String()
	debug.Log("midi", "output connected: %s", om.portName)
}

// pickOutPort selects a preferred-name match first, then falls back to
// the first non-excluded port.
func pickOutPort(ports []drivers.Out, preferred string) drivers.Out {
	if preferred != "" {
		for _, p := range ports {
			if containsCI(p.String(), preferred) {
				return p
			}
		}
		return nil
	}
	for _, p := range ports {
		if !excludedPort(p.String()) {
			return p
		}
	}
	return nil
}

func excludedPort(name string) bool {
	for _, pat := range excludedPortPatterns {
		if containsCI(name, pat) {
			return true
		}
	}
	return false
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
