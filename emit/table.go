// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/sparsegen/sparse"
)

// tableStyle maps a style name to a go-pretty style; unknown names fall back
// to the default style.
func tableStyle(name string) table.Style {
	switch strings.ToLower(name) {
	case "bold":
		return table.StyleBold
	case "double":
		return table.StyleDouble
	case "light":
		return table.StyleLight
	case "round":
		return table.StyleRounded
	default:
		return table.StyleDefault
	}
}

// writeTable renders a dense preview: one row per matrix row, stored slots
// printed (duplicates summed), absent cells left blank.
func writeTable(p *printer, b Block, style string) error {
	switch b.Kind {
	case KindCSR:
		renderGrid(p, fmt.Sprintf("%s (%s)", b.Title, b.Suffix), b.CSR, style)
	case KindCOO:
		m, err := sparse.ToCSR(b.COO)
		if err != nil {
			return err
		}
		renderGrid(p, fmt.Sprintf("%s (%s)", b.Title, b.Suffix), m, style)
	case KindCOOBatch:
		for i, coo := range b.Batch {
			m, err := sparse.ToCSR(coo)
			if err != nil {
				return err
			}
			renderGrid(p, fmt.Sprintf("%s (%s)[%d]", b.Title, b.Suffix, i), m, style)
		}
	default:
		return ErrUnsupported
	}

	return nil
}

func renderGrid(p *printer, title string, m *sparse.CSR, style string) {
	shape := m.Shape()
	p.printf("//%s %s nnz=%d\n", title, shape, m.NNZ())
	tw := table.NewWriter()
	tw.SetStyle(tableStyle(style))

	header := make(table.Row, 0, shape.Cols+1)
	header = append(header, "")
	for c := 0; c < shape.Cols; c++ {
		header = append(header, c)
	}
	tw.AppendHeader(header)

	for r := 0; r < shape.Rows; r++ {
		cells := make([]string, shape.Cols)
		present := make([]bool, shape.Cols)
		sums := make([]float64, shape.Cols)
		cols, vals, _ := m.Row(r) // r is in range
		for k, c := range cols {
			sums[c] += vals[k]
			present[c] = true
		}
		row := make(table.Row, 0, shape.Cols+1)
		row = append(row, r)
		for c := range cells {
			if present[c] {
				cells[c] = FormatFloat(sums[c])
			}
			row = append(row, cells[c])
		}
		tw.AppendRow(row)
	}

	p.println(tw.Render())
}
