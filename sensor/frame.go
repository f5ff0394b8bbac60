// Package sensor delivers accelerometer samples to the instrument,
// either from a serial-attached device or from a synthetic source.
package sensor

import "tiltone/tilt"

// Wire framing for the accelerometer stream:
//
//	[SOF0][SOF1][x.lo][x.hi][y.lo][y.hi][z.lo][z.hi][CKS]
//
// Axes are little-endian int16 raw counts, matching the device's
// 6-byte sensor event payload. CKS is the XOR of the payload bytes.
const (
	SOF0 = 0xAA
	SOF1 = 0x55

	payloadLen = 6
	frameLen   = 2 + payloadLen + 1
)

// Frame is one decoded accelerometer report. Z is carried for
// completeness; the tilt mapper only consumes X and Y.
type Frame struct {
	X, Y, Z int16
}

// Sample returns the lateral reading the tilt mapper consumes.
func (f Frame) Sample() tilt.Sample {
	return tilt.Sample{X: f.X, Y: f.Y}
}

// Encode builds the on-wire representation. Used by tests and by
// firmware simulators.
func (f Frame) Encode() []byte {
	out := make([]byte, 0, frameLen)
	out = append(out, SOF0, SOF1)
	for _, v := range [3]int16{f.X, f.Y, f.Z} {
		out = append(out, byte(uint16(v)), byte(uint16(v)>>8))
	}
	out = append(out, xorBytes(out[2:]))
	return out
}

// DecodePayload unpacks a 6-byte little-endian axis payload.
func DecodePayload(p []byte) (Frame, bool) {
	if len(p) < payloadLen {
		return Frame{}, false
	}
	return Frame{
		X: int16(uint16(p[0]) | uint16(p[1])<<8),
		Y: int16(uint16(p[2]) | uint16(p[3])<<8),
		Z: int16(uint16(p[4]) | uint16(p[5])<<8),
	}, true
}

// scanFrame pulls the first complete, checksum-valid frame out of buf.
// It returns the decoded frame, the unconsumed remainder, and whether
// a frame was found. Garbage before the sync pair is skipped.
func scanFrame(buf []byte) (Frame, []byte, bool) {
	for i := 0; i+frameLen <= len(buf); i++ {
		if buf[i] != SOF0 || buf[i+1] != SOF1 {
			continue
		}
		payload := buf[i+2 : i+2+payloadLen]
		if xorBytes(payload) != buf[i+2+payloadLen] {
			continue // corrupt frame; keep scanning
		}
		f, _ := DecodePayload(payload)
		return f, buf[i+frameLen:], true
	}
	// Keep only a tail that could still start a frame.
	if len(buf) > frameLen {
		buf = buf[len(buf)-frameLen:]
	}
	return Frame{}, buf, false
}

func xorBytes(p []byte) byte {
	var cks byte
	for _, b := range p {
		cks ^= b
	}
	return cks
}
