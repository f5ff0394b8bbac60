package scale

import "fmt"

// Scale identifies one of the playable scales.
type Scale string

const (
	Major      Scale = "Major"
	Minor      Scale = "Minor"
	Pentatonic Scale = "Pentatonic"
	Blues      Scale = "Blues"
)

// Degrees is the number of playable degrees per scale. It matches the
// 8-way angle quantization in package tilt.
const Degrees = 8

// Scale intervals - semitones from root. Every row has exactly Degrees
// entries; the last entry sits an octave or more above the first so a
// full tilt rotation spans at least an octave.
var offsets = map[Scale][Degrees]int{
	Major:      {0, 2, 4, 5, 7, 9, 11, 12},
	Minor:      {0, 2, 3, 5, 7, 8, 10, 12},
	Pentatonic: {0, 2, 4, 7, 9, 12, 14, 16},
	Blues:      {0, 3, 5, 6, 7, 10, 12, 15},
}

// Order is the cycle order used by the next-scale control.
var Order = [4]Scale{Major, Minor, Pentatonic, Blues}

// Offsets returns the semitone offsets for s. Unknown values fall back
// to Major so lookups are total.
func Offsets(s Scale) [Degrees]int {
	if o, ok := offsets[s]; ok {
		return o
	}
	return offsets[Major]
}

// Next returns the scale after s in Order, wrapping at the end.
// Cycling is index arithmetic over Order, never over the underlying
// string values, so it can't escape the defined set.
func Next(s Scale) Scale {
	for i, cur := range Order {
		if cur == s {
			return Order[(i+1)%len(Order)]
		}
	}
	return Major
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName renders a MIDI note number as pitch class plus octave,
// e.g. 48 -> "C3". Out-of-range values render as the silent marker.
func NoteName(note int) string {
	if note < 0 || note > 127 {
		return "—"
	}
	return fmt.Sprintf("%s%d", noteNames[note%12], note/12-1)
}
