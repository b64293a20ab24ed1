// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"strings"
)

// Dialect selects the literal syntax of a Section.
type Dialect int

// Supported dialects.
const (
	CPP    Dialect = iota // DimensionType/std::vector and Array<...> declarations
	Kotlin                // Shape, floatArrayOf/intArrayOf and SparseFloatTensor literals
	Table                 // go-pretty grids for reading a fixture, not for compiling it
)

var dialectNames = [...]string{CPP: "CPP", Kotlin: "Kotlin", Table: "Table"}

// String returns "CPP", "Kotlin" or "Table".
func (d Dialect) String() string {
	if d < 0 || int(d) >= len(dialectNames) {
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
	return dialectNames[d]
}

// Marker is the line written before and after a section.
func (d Dialect) Marker() string {
	return "----" + d.String() + " format----"
}

// ParseDialect maps a case-insensitive name ("cpp", "kotlin", "table") to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	for i, name := range dialectNames {
		if strings.EqualFold(s, name) {
			return Dialect(i), nil
		}
	}

	return 0, emitErrorf("ParseDialect", fmt.Errorf("%q: %w", s, ErrUnknownDialect))
}
