package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tiltone/config"
	"tiltone/debug"
	"tiltone/midi"
	"tiltone/sensor"
	"tiltone/theme"
	"tiltone/tilt"
	"tiltone/tui"
	"tiltone/voice"
)

func main() {
	demo := flag.Bool("demo", false, "run without hardware: sweep a synthetic circle of tilt")
	dbg := flag.Bool("debug", false, "write diagnostics to ~/.config/tiltone/debug.log")
	flag.Parse()

	if *dbg {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MIDI output with hot-plug handling
	out := midi.NewOutputManager(cfg.MIDIOut.PortName)
	go out.Run(ctx)

	ctrl := voice.NewController(out)

	// Sample source: serial accelerometer, or a synthetic sweep
	var samples <-chan tilt.Sample
	if *demo {
		sweep := sensor.NewSweep(16000, 64, time.Duration(cfg.TickMs)*time.Millisecond)
		go sweep.Run(ctx)
		samples = sweep.Samples()
	} else {
		reader, err := sensor.Open(cfg.Serial.Device, cfg.Serial.Baud)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sensor: %v\n(try -demo to run without hardware)\n", err)
			os.Exit(1)
		}
		defer reader.Close()
		go reader.Run(ctx)
		samples = reader.Samples()
	}

	m := tui.NewModel(ctrl, out, samples, theme.New())
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
