package behavior

// seqRand replays fixed sequences so tests can steer every sample.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *seqRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *seqRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}
