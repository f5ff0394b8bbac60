package midi

import "testing"

func TestCommandBytes(t *testing.T) {
	if NoteOn != 144 {
		t.Errorf("NoteOn = %d, want 144", NoteOn)
	}
	if NoteOff != 128 {
		t.Errorf("NoteOff = %d, want 128", NoteOff)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Send(NoteOn, 60, 100)
	r.Send(NoteOff, 60, 0)
	want := []Message{
		{NoteOn, 60, 100},
		{NoteOff, 60, 0},
	}
	if len(r.Messages) != len(want) {
		t.Fatalf("recorded %d messages, want %d", len(r.Messages), len(want))
	}
	for i, m := range want {
		if r.Messages[i] != m {
			t.Errorf("message %d = %+v, want %+v", i, r.Messages[i], m)
		}
	}
}

func TestSenderFunc(t *testing.T) {
	var got Message
	s := SenderFunc(func(command, note, velocity uint8) {
		got = Message{command, note, velocity}
	})
	s.Send(NoteOn, 48, 0)
	if got != (Message{NoteOn, 48, 0}) {
		t.Errorf("got %+v", got)
	}
}

func TestExcludedPort(t *testing.T) {
	if !excludedPort("Midi Through Port-0") {
		t.Error("through port should be excluded")
	}
	if excludedPort("FluidSynth virtual port") {
		t.Error("synth port should not be excluded")
	}
}
