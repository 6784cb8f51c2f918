package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{1, 3, 0, 1},
		{1, 3, 0.5, 2},
		{1, 3, 1, 3},
		{3, 1, 0.25, 2.5},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); got != c.want {
			t.Fatalf("Lerp(%v,%v,%v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.3: 0.3, 2: 1} {
		if got := Clamp01(in); got != want {
			t.Fatalf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}
