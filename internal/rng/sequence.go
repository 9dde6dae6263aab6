package rng

// Sequence is a scripted Source. Float64 replays Floats in order and then
// repeats the last value (0.5 when empty); IntN replays Ints modulo n and
// then returns 0; Shuffle leaves the order untouched.
type Sequence struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.5
	}
	if s.fi >= len(s.Floats) {
		return s.Floats[len(s.Floats)-1]
	}
	v := s.Floats[s.fi]
	s.fi++
	return v
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 || s.ii >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.ii] % n
	s.ii++
	return v
}

func (s *Sequence) Shuffle(int, func(i, j int)) {}

// FloatsUsed reports how many scripted floats were consumed.
func (s *Sequence) FloatsUsed() int { return s.fi }
