package payroll

import "math"

// Bracket is one tier of a progressive schedule. Deduction is only used by
// flat-rate tables.
type Bracket struct {
	UpperBound float64
	Rate       float64
	Deduction  float64
}

// Table is an ascending list of brackets. The last bracket may use an
// infinite upper bound.
type Table []Bracket

// Accumulation selects how a Table turns a base amount into a withholding.
type Accumulation int

const (
	// Cumulative taxes each slice of the base at its own bracket rate and
	// caps the base at the top bracket.
	Cumulative Accumulation = iota
	// FlatRate applies the matched bracket's rate to the whole base and
	// subtracts that bracket's deduction.
	FlatRate
)

// Lookup returns the index of the lowest bracket whose upper bound is
// greater than or equal to base, or the last index if base exceeds them all.
func (t Table) Lookup(base float64) int {
	for i, b := range t {
		if base <= b.UpperBound {
			return i
		}
	}
	return len(t) - 1
}

// Ceiling is the upper bound of the last bracket.
func (t Table) Ceiling() float64 {
	if len(t) == 0 {
		return math.Inf(1)
	}
	return t[len(t)-1].UpperBound
}

// Evaluate computes the withholding for base under the given accumulation
// policy. An empty table yields zero.
func (t Table) Evaluate(base float64, mode Accumulation) float64 {
	if len(t) == 0 {
		return 0
	}

	switch mode {
	case FlatRate:
		b := t[t.Lookup(base)]
		return base*b.Rate - b.Deduction
	default:
		if ceiling := t.Ceiling(); base > ceiling {
			base = ceiling
		}
		i := t.Lookup(base)

		total := 0.0
		lower := 0.0
		for _, b := range t[:i] {
			total += (b.UpperBound - lower) * b.Rate
			lower = b.UpperBound
		}
		return total + (base-lower)*t[i].Rate
	}
}
