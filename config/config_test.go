package config

import (
	"encoding/json"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Serial.Device == "" || cfg.Serial.Baud == 0 {
		t.Errorf("default serial config incomplete: %+v", cfg.Serial)
	}
	if cfg.TickMs <= 0 {
		t.Errorf("default tick %d", cfg.TickMs)
	}
}

func TestUnmarshalOverridesDefaults(t *testing.T) {
	data := []byte(`{"serial":{"device":"/dev/ttyUSB3"},"midiOut":{"portName":"FluidSynth"}}`)
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Serial.Device != "/dev/ttyUSB3" {
		t.Errorf("device = %q", cfg.Serial.Device)
	}
	if cfg.Serial.Baud != 115200 {
		t.Errorf("baud default lost: %d", cfg.Serial.Baud)
	}
	if cfg.MIDIOut.PortName != "FluidSynth" {
		t.Errorf("portName = %q", cfg.MIDIOut.PortName)
	}
}
