// SPDX-License-Identifier: MIT

package fixture

import (
	"bytes"
	"context"
	"fmt"

	"github.com/katalvlaran/sparsegen/emit"
)

// Sink receives the rendered text of one case.
type Sink func(c Case, text []byte) error

// Render runs one scenario and renders its sections, plus a table preview
// when table is set. Nothing is returned on failure, so callers never see a
// partial fixture.
func (g *Generator) Render(name string, p Params, table bool, tableStyle string) ([]byte, error) {
	res, err := g.Run(name, p)
	if err != nil {
		return nil, err
	}
	sections := res.Sections()
	if table {
		sections = append(sections, Preview(res, tableStyle))
	}

	var buf bytes.Buffer
	if err = emit.Render(&buf, sections...); err != nil {
		return nil, fixtureErrorf(name, err)
	}

	return buf.Bytes(), nil
}

// Batch renders every case of m in order and hands each result to sink.
// It stops at the first failure or when ctx is done.
func (g *Generator) Batch(ctx context.Context, m *Manifest, tableStyle string, sink Sink) error {
	if err := m.Validate(); err != nil {
		return fixtureErrorf("Batch", err)
	}
	for i, c := range m.Cases {
		if err := ctx.Err(); err != nil {
			return fixtureErrorf("Batch", err)
		}
		g.logger.Info("case", "index", i, "name", c.Name, "scenario", c.Scenario, "output", c.Output)
		text, err := g.Render(c.Scenario, c.Params, c.Table, tableStyle)
		if err != nil {
			return fixtureErrorf("Batch", fmt.Errorf("case %d (%s): %w", i, c.Name, err))
		}
		if err = sink(c, text); err != nil {
			return fixtureErrorf("Batch", fmt.Errorf("case %d (%s): %w", i, c.Name, err))
		}
	}

	return nil
}
