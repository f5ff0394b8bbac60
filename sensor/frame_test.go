package sensor

import (
	"bytes"
	"testing"
	"time"

	"tiltone/tilt"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	frames := []Frame{
		{0, 0, 0},
		{200, -200, 16384},
		{-32768, 32767, -1},
	}
	for _, f := range frames {
		got, rest, ok := scanFrame(f.Encode())
		if !ok {
			t.Fatalf("%+v: no frame found", f)
		}
		if got != f {
			t.Errorf("decoded %+v, want %+v", got, f)
		}
		if len(rest) != 0 {
			t.Errorf("%+v: %d bytes left over", f, len(rest))
		}
	}
}

func TestScanFrameSkipsGarbage(t *testing.T) {
	f := Frame{X: 1000, Y: -1000, Z: 42}
	buf := append([]byte{0x00, SOF0, 0x13, 0x37}, f.Encode()...)
	got, _, ok := scanFrame(buf)
	if !ok {
		t.Fatal("no frame found after garbage prefix")
	}
	if got != f {
		t.Errorf("decoded %+v, want %+v", got, f)
	}
}

func TestScanFrameRejectsBadChecksum(t *testing.T) {
	enc := Frame{X: 1, Y: 2, Z: 3}.Encode()
	enc[len(enc)-1] ^= 0xFF
	if _, _, ok := scanFrame(enc); ok {
		t.Error("corrupt frame accepted")
	}
}

func TestScanFramePartial(t *testing.T) {
	enc := Frame{X: 1, Y: 2, Z: 3}.Encode()
	half := enc[:4]
	_, rest, ok := scanFrame(half)
	if ok {
		t.Fatal("partial frame accepted")
	}
	// The tail must survive so the frame completes on the next read.
	full := append(append([]byte{}, rest...), enc[4:]...)
	got, _, ok := scanFrame(full)
	if !ok {
		t.Fatal("frame not found after completing the tail")
	}
	if (got != Frame{X: 1, Y: 2, Z: 3}) {
		t.Errorf("decoded %+v", got)
	}
}

func TestDecodePayloadShort(t *testing.T) {
	if _, ok := DecodePayload([]byte{1, 2, 3}); ok {
		t.Error("short payload accepted")
	}
}

func TestEncodeLayout(t *testing.T) {
	enc := Frame{X: 0x0102, Y: 0x0304, Z: 0x0506}.Encode()
	want := []byte{SOF0, SOF1, 0x02, 0x01, 0x04, 0x03, 0x06, 0x05}
	if !bytes.Equal(enc[:8], want) {
		t.Errorf("encoded %x, want prefix %x", enc, want)
	}
}

func TestSweepCoversAllBuckets(t *testing.T) {
	s := NewSweep(20000, 64, time.Millisecond)
	seen := map[int]bool{}
	for i := 0; i < 64; i++ {
		p := tilt.Map(s.At(i))
		if p.Silent {
			t.Fatalf("step %d: sweep sample inside dead zone", i)
		}
		seen[p.Bucket] = true
	}
	if len(seen) != 8 {
		t.Errorf("sweep covered %d sectors, want 8", len(seen))
	}
}
