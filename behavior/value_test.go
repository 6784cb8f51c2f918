package behavior

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestValueGet(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		r    Rand
		want float64
	}{
		{"fixed", Fixed(2.5), &seqRand{floats: []float64{0.9}}, 2.5},
		{"range_low", Range(1, 3), &seqRand{floats: []float64{0}}, 1},
		{"range_mid", Range(1, 3), &seqRand{floats: []float64{0.5}}, 2},
		{"range_degenerate", Range(4, 4), &seqRand{floats: []float64{0.5}}, 4},
		{"range_nil_rand", Range(1, 3), nil, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.Get(c.r); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestValueValidate(t *testing.T) {
	if err := Range(3, 1).Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if err := Range(1, 3).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Fixed(-1).Validate(); err != nil {
		t.Fatalf("fixed values carry no range: %v", err)
	}
}

func TestProfileValidate(t *testing.T) {
	base := func() *Profile {
		return &Profile{
			Name:                    "p",
			Speed:                   Fixed(1),
			DirectionSwitchInterval: Range(1, 2),
			HappyColor:              color.White,
			AngryColor:              color.Black,
			AngryInterval:           Fixed(2),
			AngryDuration:           Fixed(1),
		}
	}

	cases := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr string
	}{
		{"valid", func(p *Profile) {}, ""},
		{"inverted_range", func(p *Profile) { p.AngryInterval = Range(5, 1) }, "angry_interval"},
		{"negative_speed", func(p *Profile) { p.Speed = Fixed(-1) }, "speed"},
		{"negative_margin", func(p *Profile) { p.OnscreenMargins.X = -1 }, "onscreen_margins"},
		{"zero_mood_waits", func(p *Profile) { p.AngryInterval = Fixed(0); p.AngryDuration = Range(0, 1) }, "must not both be zero"},
		{"zero_interval_only", func(p *Profile) { p.AngryInterval = Fixed(0) }, ""},
		{"missing_color", func(p *Profile) { p.AngryColor = nil }, "angry_color"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := base()
			c.mutate(p)
			err := p.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestProfileColor(t *testing.T) {
	p := &Profile{HappyColor: color.White, AngryColor: color.Black}
	if p.Color(Happy) != color.White || p.Color(Angry) != color.Black {
		t.Fatalf("unexpected mood colors")
	}
}
