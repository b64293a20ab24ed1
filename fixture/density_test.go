// SPDX-License-Identifier: MIT
package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegen/fixture"
)

func TestProcessListTwo(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		a, b   float64
		wantOK bool
	}{
		{"one value", []float64{0.3}, 0.3, 0.3, true},
		{"pair", []float64{0.3, 0.7}, 0.3, 0.7, true},
		{"empty", nil, 0.5, 0.5, false},
		{"three values", []float64{0.1, 0.2, 0.3}, 0.5, 0.5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b, ok := fixture.ProcessListTwo(tc.in, 0.5)
			require.Equal(t, tc.a, a)
			require.Equal(t, tc.b, b)
			require.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestProcessList(t *testing.T) {
	as, bs, ok := fixture.ProcessList([]float64{0.1}, 3, 0.2)
	require.True(t, ok)
	require.Equal(t, []float64{0.1, 0.1, 0.1}, as)
	require.Equal(t, []float64{0.1, 0.1, 0.1}, bs)

	as, bs, ok = fixture.ProcessList([]float64{0.1, 0.9}, 3, 0.2)
	require.True(t, ok)
	require.Equal(t, []float64{0.1, 0.1, 0.1}, as)
	require.Equal(t, []float64{0.9, 0.9, 0.9}, bs)

	as, bs, ok = fixture.ProcessList([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, 3, 0.2)
	require.True(t, ok)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, as)
	require.Equal(t, []float64{0.4, 0.5, 0.6}, bs)

	as, bs, ok = fixture.ProcessList([]float64{0.1, 0.2, 0.3}, 3, 0.2)
	require.False(t, ok)
	require.Equal(t, []float64{0.2, 0.2, 0.2}, as)
	require.Equal(t, []float64{0.2, 0.2, 0.2}, bs)
}
