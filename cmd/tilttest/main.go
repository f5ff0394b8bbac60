package main

import (
	"fmt"
	"os"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"tiltone/midi"
	"tiltone/scale"
	"tiltone/sensor"
	"tiltone/voice"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "sweep":
		sweepController()
	case "buckets":
		dumpBuckets()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("tiltone test scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list     - List all MIDI ports")
	fmt.Println("  sweep    - Run a full tilt rotation through the controller, print events")
	fmt.Println("  buckets  - Dump the tilt sector -> note table for each scale")
}

func listPorts() {
	fmt.Println("=== MIDI Output Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()

	select {
	case outs := <-ch:
		for i, p := range outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! MIDI backend is hung.")
	}
}

// sweepController drives one full rotation through a fresh controller
// and prints every message it emits.
func sweepController() {
	rec := &midi.Recorder{}
	ctrl := voice.NewController(rec)
	sweep := sensor.NewSweep(16000, 64, time.Millisecond)

	for i := 0; i <= 64; i++ {
		before := len(rec.Messages)
		ctrl.ProcessSample(sweep.At(i))
		for _, m := range rec.Messages[before:] {
			cmd := "off"
			if m.Command == midi.NoteOn {
				cmd = "on "
			}
			fmt.Printf("step %2d: note-%s %3d (%s) vel %d\n", i, cmd, m.Note, scale.NoteName(int(m.Note)), m.Velocity)
		}
	}
	ctrl.PowerOff()
	fmt.Printf("total messages: %d\n", len(rec.Messages))
}

func dumpBuckets() {
	for _, s := range scale.Order {
		fmt.Printf("%s:\n", s)
		offsets := scale.Offsets(s)
		for bucket, off := range offsets {
			note := 4*12 + off
			fmt.Printf("  sector %d (%3d°-%3d°): %3d %s\n", bucket, bucket*45, (bucket+1)*45, note, scale.NoteName(note))
		}
	}
}
