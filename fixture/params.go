// SPDX-License-Identifier: MIT

package fixture

// Params are the knobs shared by all scenarios. Each scenario reads only the
// fields it needs:
//
//	Rows   p (addsubtimes, matmul*, matdiv, testall) or r (single-matrix scenarios)
//	Cols   q (addsubtimes, matmul*, matdiv) or c (single-matrix scenarios)
//	Inner  k, the shared dimension of A (p×k) and B (k×q)
//	Batch  number of products in matmul3d
type Params struct {
	Rows      int       `yaml:"rows,omitempty"`
	Cols      int       `yaml:"cols,omitempty"`
	Inner     int       `yaml:"inner,omitempty"`
	Batch     int       `yaml:"batch,omitempty"`
	Densities []float64 `yaml:"densities,omitempty"`
	Seed      uint32    `yaml:"seed,omitempty"`
	Permute   bool      `yaml:"permute,omitempty"`
}

// Defaults every scenario starts from.
const (
	DefaultDim           = 3   // rows, cols and inner size
	DefaultBatch         = 2   // products in matmul3d
	DefaultDensity       = 0.5 // non-zero ratio of every scenario but matmul3d
	DefaultBatchDensity  = 0.2 // non-zero ratio of matmul3d
	DefaultSeed   uint32 = 0   // numpy.random.seed(0)
)

// DefaultParams returns the defaults of the named scenario.
func DefaultParams(name string) (Params, error) {
	sc, err := lookup(name)
	if err != nil {
		return Params{}, err
	}

	return sc.defaults(), nil
}

// withDefaults fills zero-valued fields from d. Densities are replaced only
// when empty.
func (p Params) withDefaults(d Params) Params {
	if p.Rows == 0 {
		p.Rows = d.Rows
	}
	if p.Cols == 0 {
		p.Cols = d.Cols
	}
	if p.Inner == 0 {
		p.Inner = d.Inner
	}
	if p.Batch == 0 {
		p.Batch = d.Batch
	}
	if len(p.Densities) == 0 {
		p.Densities = append([]float64(nil), d.Densities...)
	}

	return p
}

func baseDefaults(density float64) Params {
	return Params{
		Rows:      DefaultDim,
		Cols:      DefaultDim,
		Inner:     DefaultDim,
		Batch:     DefaultBatch,
		Densities: []float64{density},
		Seed:      DefaultSeed,
	}
}
