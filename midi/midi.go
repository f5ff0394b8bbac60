package midi

// MIDI command bytes carried on the sink call.
const (
	NoteOn  uint8 = 0x90 // 144
	NoteOff uint8 = 0x80 // 128
)

// Sender is the one capability the voice core needs from its
// environment: deliver a single (command, note, velocity) message.
// Delivery is fire-and-forget; senders never report transport failure
// back to the core.
type Sender interface {
	Send(command, note, velocity uint8)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(command, note, velocity uint8)

func (f SenderFunc) Send(command, note, velocity uint8) { f(command, note, velocity) }

// Message is one recorded sink call.
type Message struct {
	Command  uint8
	Note     uint8
	Velocity uint8
}

// Recorder is a Sender that keeps every message in memory. Used by
// tests and by the headless tilttest tool.
type Recorder struct {
	Messages []Message
}

func (r *Recorder) Send(command, note, velocity uint8) {
	r.Messages = append(r.Messages, Message{Command: command, Note: note, Velocity: velocity})
}
