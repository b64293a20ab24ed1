// SPDX-License-Identifier: MIT

package emit

import (
	"strings"

	"github.com/katalvlaran/sparsegen/sparse"
)

func writeCPP(p *printer, b Block) error {
	switch b.Kind {
	case KindCSR:
		cppCSR(p, b.Title, b.Suffix, b.CSR)
	case KindCOO:
		cppCOO(p, b.Title, b.Suffix, b.COO)
	default:
		return ErrUnsupported
	}

	return nil
}

func cppCSR(p *printer, title, s string, m *sparse.CSR) {
	shape := m.Shape()
	p.printf("//%s:\n", title)
	p.printf("DimensionType rows%s = %d, cols%s = %d;\n", s, shape.Rows, s, shape.Cols)
	p.longList("std::vector<DataType> values"+s+" = {", floats(m.Values()), "", "};")
	p.longList("std::vector<DimensionType> inner"+s+" = {", ints(m.Indices()), "", "};")
	p.longList("std::vector<OrdinalType> outer"+s+" = {", ints(m.Indptr()), "", "};")
}

func cppCOO(p *printer, title, s string, m *sparse.COO) {
	shape := m.Shape()
	p.printf("//%s:\n", title)
	p.printf("Array<DimensionType> shape%s(2);\n", s)
	p.printf("shape%s[0] = %d, shape%s[1] = %d;\n", s, shape.Rows, s, shape.Cols)
	p.printf("Array<DimensionType> rowsIndex%s {%s};\n", s, strings.Join(ints(m.RowIndices()), ", "))
	p.printf("Array<DimensionType> colsIndex%s {%s};\n", s, strings.Join(ints(m.ColIndices()), ", "))
	p.printf("Array<DataType> values%s {%s};\n", s, strings.Join(floats(m.Values()), ", "))
}
