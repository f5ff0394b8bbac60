package scale

import "testing"

func TestOffsetsShape(t *testing.T) {
	for _, s := range Order {
		o := Offsets(s)
		for i := 1; i < Degrees; i++ {
			if o[i] < o[i-1] {
				t.Errorf("%s: offsets decrease at %d: %v", s, i, o)
			}
		}
		if o[Degrees-1]-o[0] < 12 {
			t.Errorf("%s: span %d is less than an octave", s, o[Degrees-1]-o[0])
		}
	}
}

func TestOffsetsUnknownFallsBackToMajor(t *testing.T) {
	if Offsets(Scale("Dorian")) != Offsets(Major) {
		t.Error("unknown scale should fall back to Major")
	}
}

func TestNextWraps(t *testing.T) {
	s := Major
	want := []Scale{Minor, Pentatonic, Blues, Major}
	for i, w := range want {
		s = Next(s)
		if s != w {
			t.Fatalf("step %d: got %s, want %s", i, s, w)
		}
	}
}

func TestNoteName(t *testing.T) {
	tests := []struct {
		note int
		want string
	}{
		{48, "C3"},
		{52, "E3"},
		{60, "C4"},
		{61, "C#4"},
		{127, "G9"},
		{-1, "—"},
		{128, "—"},
	}
	for _, tt := range tests {
		if got := NoteName(tt.note); got != tt.want {
			t.Errorf("NoteName(%d) = %q, want %q", tt.note, got, tt.want)
		}
	}
}
