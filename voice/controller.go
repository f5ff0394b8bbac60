// Package voice holds the monophonic note state machine: it turns a
// stream of accelerometer samples and button operations into
// note-on/note-off messages on an injected MIDI sink.
package voice

import (
	"tiltone/midi"
	"tiltone/scale"
	"tiltone/tilt"
)

const (
	baseOctave = 4
	maxOctave  = 8
)

// Controller is the instrument's single mutable entity. At most one
// note sounds at a time, and a note-off for the old note is always
// emitted before the note-on for a new one.
//
// Controller is not safe for concurrent use; the polling loop is its
// only caller.
type Controller struct {
	sink    midi.Sender
	octave  int         // transposition, clamped to [0, maxOctave]
	scale   scale.Scale // active scale
	note    int         // sounding MIDI note, -1 when silent
	powered bool
	guide   bool
}

// NewController returns a powered, silent controller at middle octave
// on the Major scale. All emitted messages go to sink.
func NewController(sink midi.Sender) *Controller {
	return &Controller{
		sink:    sink,
		octave:  baseOctave,
		scale:   scale.Major,
		note:    -1,
		powered: true,
	}
}

// ProcessSample runs one tick of the state machine. While powered off
// the sample is dropped entirely.
//
// A sample that maps to the already-sounding note emits nothing:
// events fire on note change only, never as sustain pulses.
func (c *Controller) ProcessSample(s tilt.Sample) {
	if !c.powered {
		return
	}

	p := tilt.Map(s)
	if p.Silent {
		c.release()
		return
	}

	note := c.octave*12 + scale.Offsets(c.scale)[p.Bucket]
	if note == c.note {
		return
	}
	c.release()
	c.sink.Send(midi.NoteOn, uint8(note), p.Velocity)
	c.note = note
}

// release emits the note-off for the sounding note, if any.
func (c *Controller) release() {
	if c.note < 0 {
		return
	}
	c.sink.Send(midi.NoteOff, uint8(c.note), 0)
	c.note = -1
}

// OctaveUp raises the transposition by an octave, clamped at the top.
func (c *Controller) OctaveUp() {
	if c.powered && c.octave < maxOctave {
		c.octave++
	}
}

// OctaveDown lowers the transposition by an octave, clamped at zero.
func (c *Controller) OctaveDown() {
	if c.powered && c.octave > 0 {
		c.octave--
	}
}

// NextScale cycles to the next scale in scale.Order.
func (c *Controller) NextScale() {
	if c.powered {
		c.scale = scale.Next(c.scale)
	}
}

// ToggleGuide flips the on-screen guide. Display only; audio logic
// never reads it.
func (c *Controller) ToggleGuide() {
	if c.powered {
		c.guide = !c.guide
	}
}

// PowerOff releases any sounding note, then gates the controller.
// It always runs, even when already off, and is terminal: there is no
// power-on, a new Controller must be constructed.
func (c *Controller) PowerOff() {
	c.release()
	c.powered = false
}

// Status reads. Always available, regardless of power state.

func (c *Controller) Powered() bool             { return c.powered }
func (c *Controller) GuideVisible() bool        { return c.guide }
func (c *Controller) CurrentScale() scale.Scale { return c.scale }
func (c *Controller) Octave() int               { return c.octave }

// SoundingNote returns the MIDI note currently on, or -1 when silent.
func (c *Controller) SoundingNote() int { return c.note }

// NoteName renders the sounding note for display, "—" when silent.
func (c *Controller) NoteName() string {
	return scale.NoteName(c.note)
}
