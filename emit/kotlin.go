// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"

	"github.com/katalvlaran/sparsegen/sparse"
)

func writeKotlin(p *printer, b Block) error {
	switch b.Kind {
	case KindCSR:
		kotlinCSR(p, b.Title, b.Suffix, b.CSR)
	case KindCOO:
		kotlinCOO(p, b.Title, b.Suffix, b.COO)
	case KindCOOBatch:
		return kotlinBatch(p, b.Title, b.Suffix, b.Batch)
	default:
		return ErrUnsupported
	}

	return nil
}

// kotlinCOO writes one Pair per line; the closing "))" follows the last
// pair on the same line.
func kotlinCOO(p *printer, title, s string, m *sparse.COO) {
	shape := m.Shape()
	p.printf("//%s:\n", title)
	p.printf("val %s = SparseFloatTensor(Shape(%d, %d), listOf(\n", s, shape.Rows, shape.Cols)
	entries := m.Entries()
	for i, e := range entries {
		p.printf("Pair(intArrayOf(%d, %d), %sf)", e.Row, e.Col, FormatFloat(e.Value))
		if i < len(entries)-1 {
			p.printf(",\n")
		}
	}
	p.println("))")
}

func kotlinCSR(p *printer, title, s string, m *sparse.CSR) {
	shape := m.Shape()
	p.printf("//%s:\n", title)
	p.printf("val shape%s = Shape(%d, %d)\n", s, shape.Rows, shape.Cols)
	p.longList("val values"+s+" = floatArrayOf(", floats(m.Values()), "f", ")")
	p.longList("val inner"+s+" = intArrayOf(", ints(m.Indices()), "", ")")
	p.longList("val outer"+s+" = intArrayOf(", ints(m.Indptr()), "", ")")
}

// kotlinBatch writes a 3-D tensor Shape(b, R, C). Every pair but the very
// last one of the last matrix is followed by ",\n". An empty batch writes
// nothing.
func kotlinBatch(p *printer, title, s string, ms []*sparse.COO) error {
	if len(ms) == 0 {
		return nil
	}
	shape := ms[0].Shape()
	for i, m := range ms {
		if m.Shape() != shape {
			return fmt.Errorf("%s: member %d is %s, want %s: %w", title, i, m.Shape(), shape, ErrInconsistentBatch)
		}
	}

	p.printf("//%s:\n", title)
	p.printf("val %s = SparseFloatTensor(Shape(%d, %d, %d), listOf(\n", s, len(ms), shape.Rows, shape.Cols)
	last := len(ms) - 1
	for i, m := range ms {
		entries := m.Entries()
		for x, e := range entries {
			p.printf("Pair(intArrayOf(%d, %d, %d), %sf)", i, e.Row, e.Col, FormatFloat(e.Value))
			if i != last || x < len(entries)-1 {
				p.printf(",\n")
			}
		}
	}
	p.println("))")

	return nil
}
