package sensor

import (
	"context"
	"fmt"

	"go.bug.st/serial"

	"tiltone/debug"
	"tiltone/tilt"
)

// Reader streams accelerometer samples from a serial-attached device.
type Reader struct {
	port    serial.Port
	samples chan tilt.Sample
}

// Open opens the named serial device at the given baud rate.
func Open(device string, baud int) (*Reader, error) {
	mode := &serial.Mode{BaudRate: baud}
	p, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	debug.Log("sensor", "serial port opened: %s @ %d", device, baud)
	return &Reader{
		port:    p,
		samples: make(chan tilt.Sample, 32),
	}, nil
}

// Samples returns the stream of decoded samples. Closed when Run exits.
func (r *Reader) Samples() <-chan tilt.Sample {
	return r.samples
}

// Run reads and decodes frames until ctx is cancelled or the port
// errors (blocking - run in goroutine). Samples are dropped rather
// than blocking if the consumer falls behind.
func (r *Reader) Run(ctx context.Context) {
	defer close(r.samples)

	buf := make([]byte, 64)
	var pending []byte
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := r.port.Read(buf)
		if err != nil {
			debug.Log("sensor", "read error: %v", err)
			return
		}
		pending = append(pending, buf[:n]...)

		for {
			frame, rest, ok := scanFrame(pending)
			pending = rest
			if !ok {
				break
			}
			debug.LogEvery(100, "sensor", "frame x=%d y=%d z=%d", frame.X, frame.Y, frame.Z)
			select {
			case r.samples <- frame.Sample():
			default:
			}
		}
	}
}

// Close closes the underlying serial port, which also unblocks Run.
func (r *Reader) Close() error {
	return r.port.Close()
}
