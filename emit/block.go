// SPDX-License-Identifier: MIT

package emit

import "github.com/katalvlaran/sparsegen/sparse"

// Kind is the matrix form carried by a Block.
type Kind int

// Matrix forms a Block can carry; each dialect supports a subset.
const (
	KindCSR      Kind = iota // Block.CSR: values, inner and outer arrays
	KindCOO                  // Block.COO: (row, col, value) triplets in stored order
	KindCOOBatch             // Block.Batch: equally shaped COOs stacked along a leading axis (Kotlin only)
)

// Block is one named matrix in a fixture. Title becomes the "//Title:"
// comment; Suffix is appended to every generated identifier.
type Block struct {
	Title  string
	Suffix string
	Kind   Kind
	CSR    *sparse.CSR
	COO    *sparse.COO
	Batch  []*sparse.COO
}

// CSRBlock wraps a CSR matrix.
func CSRBlock(title, suffix string, m *sparse.CSR) Block {
	return Block{Title: title, Suffix: suffix, Kind: KindCSR, CSR: m}
}

// COOBlock wraps a COO matrix.
func COOBlock(title, suffix string, m *sparse.COO) Block {
	return Block{Title: title, Suffix: suffix, Kind: KindCOO, COO: m}
}

// BatchBlock wraps a batch of equally shaped COO matrices (a 3-D tensor).
func BatchBlock(title, suffix string, ms []*sparse.COO) Block {
	return Block{Title: title, Suffix: suffix, Kind: KindCOOBatch, Batch: ms}
}

// Section is a run of blocks in one dialect.
type Section struct {
	Dialect Dialect
	Blocks  []Block
	// TableStyle names the go-pretty style of a Table section
	// ("default", "bold", "double", "light", "round"); ignored otherwise.
	TableStyle string
}

func (b Block) check() error {
	switch b.Kind {
	case KindCSR:
		if b.CSR == nil {
			return ErrEmptyBlock
		}
	case KindCOO:
		if b.COO == nil {
			return ErrEmptyBlock
		}
	case KindCOOBatch:
		for _, m := range b.Batch {
			if m == nil {
				return ErrEmptyBlock
			}
		}
	default:
		return ErrUnsupported
	}

	return nil
}
