package assets

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestPopPCM(t *testing.T) {
	cases := []struct {
		name       string
		sampleRate int
		wantBytes  int
	}{
		{"cd_rate", 44100, int(44100*popDuration) * 4},
		{"low_rate", 8000, int(8000*popDuration) * 4},
		{"invalid", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pcm := PopPCM(c.sampleRate)
			if len(pcm) != c.wantBytes {
				t.Fatalf("expected %d bytes, got %d", c.wantBytes, len(pcm))
			}
		})
	}
}

func TestPopPCMIsStereoAndDecays(t *testing.T) {
	pcm := PopPCM(44100)
	frames := len(pcm) / 4

	peak := func(from, to int) float64 {
		m := 0.0
		for i := from; i < to; i++ {
			l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
			r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
			if l != r {
				t.Fatalf("frame %d: channels differ %d != %d", i, l, r)
			}
			m = math.Max(m, math.Abs(float64(l)))
		}
		return m
	}

	head := peak(0, frames/4)
	tail := peak(3*frames/4, frames)
	if head == 0 {
		t.Fatalf("expected audible start")
	}
	if tail >= head {
		t.Fatalf("expected decay, head=%v tail=%v", head, tail)
	}
}

func TestLoadSoundUnknown(t *testing.T) {
	if _, err := LoadSound("missing"); err == nil {
		t.Fatalf("expected error for unknown sound")
	}
	if HasImage("missing") || !HasImage("face") {
		t.Fatalf("unexpected image registry contents")
	}
}
