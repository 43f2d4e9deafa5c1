package lp

// Scale carries the equilibration state of a working LP: per-column and
// per-row factors plus the cost scale. All factors are positive and,
// after rounding, integer powers of two. The neutral value is 1.
type Scale struct {
	Col  []float64
	Row  []float64
	Cost float64
}

// Reset sizes the vectors for an LP of the given shape and restores
// every factor to 1.
func (s *Scale) Reset(numCol, numRow int) {
	if cap(s.Col) < numCol {
		s.Col = make([]float64, numCol)
	}
	s.Col = s.Col[:numCol]
	if cap(s.Row) < numRow {
		s.Row = make([]float64, numRow)
	}
	s.Row = s.Row[:numRow]
	for j := range s.Col {
		s.Col[j] = 1
	}
	for i := range s.Row {
		s.Row[i] = 1
	}
	s.Cost = 1
}

// IsNeutral reports whether no factor differs from 1.
func (s *Scale) IsNeutral() bool {
	if s.Cost != 1 {
		return false
	}
	for _, v := range s.Col {
		if v != 1 {
			return false
		}
	}
	for _, v := range s.Row {
		if v != 1 {
			return false
		}
	}

	return true
}
