package engine

// Sequence replays a fixed list of draws, cycling when exhausted. It is
// meant for replays and for pinning exact branches in tests.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence creates a Sequence. An empty list always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Drawn reports how many values have been consumed
func (s *Sequence) Drawn() int {
	return s.pos
}
