// SPDX-License-Identifier: MIT
// Package: fixture
//
// Density lists as accepted on the command line (-z 0.3 [0.7 ...]).

package fixture

// ProcessListTwo extracts the densities of operands A and B from l.
//   - len(l) == 1: both take l[0];
//   - len(l) == 2: A = l[0], B = l[1];
//   - otherwise:   both take v and ok is false.
func ProcessListTwo(l []float64, v float64) (a, b float64, ok bool) {
	as, bs, ok := ProcessList(l, 1, v)
	return as[0], bs[0], ok
}

// ProcessList extracts two per-batch density lists of length s from l.
//   - len(l) == 1:   As = [l0]*s,  Bs = [l0]*s;
//   - len(l) == 2:   As = [l0]*s,  Bs = [l1]*s;
//   - len(l) == 2*s: As = l[:s],   Bs = l[s:];
//   - otherwise:     both are [v]*s and ok is false.
//
// The length-2 rule wins over the split rule when s == 1.
func ProcessList(l []float64, s int, v float64) (as, bs []float64, ok bool) {
	switch {
	case len(l) == 1:
		return repeat(l[0], s), repeat(l[0], s), true
	case len(l) == 2:
		return repeat(l[0], s), repeat(l[1], s), true
	case len(l) == 2*s && s > 0:
		as = append([]float64(nil), l[:s]...)
		bs = append([]float64(nil), l[s:]...)
		return as, bs, true
	default:
		return repeat(v, s), repeat(v, s), false
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
