// SPDX-License-Identifier: MIT

package fixture

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/sparsegen/builder"
	"github.com/katalvlaran/sparsegen/entropy"
	"github.com/katalvlaran/sparsegen/ops"
	"github.com/katalvlaran/sparsegen/sparse"
)

// Generator runs scenarios. The zero value is not usable; call NewGenerator.
type Generator struct {
	logger *slog.Logger
	opOpts []ops.Option
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger for DEBUG (per matrix) and WARN (singular
// inversion, density fallback) records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fixture: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// WithOpOptions forwards options to every binary operator (e.g. ops.WithPruneZeros()).
func WithOpOptions(opts ...ops.Option) Option {
	return func(g *Generator) { g.opOpts = append(g.opOpts, opts...) }
}

// NewGenerator returns a Generator; by default it logs nothing.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// run holds the per-invocation state: the scenario name for log records and
// the one entropy stream every draw of the invocation comes from.
type run struct {
	g    *Generator
	name string
	src  *entropy.MT19937
}

func (g *Generator) start(name string, seed uint32) *run {
	g.logger.Debug("scenario start", "scenario", name, "seed", seed)
	return &run{g: g, name: name, src: entropy.NewMT19937(seed)}
}

// draw generates matrices in the given order from the run's stream.
func (r *run) draw(labels []string, cons ...builder.Constructor) ([]*sparse.CSR, error) {
	ms, err := builder.Build([]builder.BuilderOption{builder.WithSource(r.src)}, cons...)
	if err != nil {
		return nil, err
	}
	for i, m := range ms {
		r.trace(labels[i], m)
	}

	return ms, nil
}

func (r *run) trace(label string, m *sparse.CSR) {
	r.g.logger.Debug("matrix", "scenario", r.name, "matrix", label, "shape", m.Shape().String(), "nnz", m.NNZ())
}

// singular logs the inversion fallback; the fixture is still emitted.
func (r *run) singular(label string, shape sparse.Shape) {
	r.g.logger.Warn("matrix is not invertible, emitting empty result",
		"scenario", r.name, "matrix", label, "shape", shape.String())
}

// densities resolves a two-operand density list, warning on fallback.
func (r *run) densities(l []float64) (a, b float64) {
	a, b, ok := ProcessListTwo(l, DefaultDensity)
	if !ok {
		r.fallback(l, DefaultDensity)
	}
	return a, b
}

// density resolves the single density of a one-matrix scenario.
func (r *run) density(l []float64) float64 {
	switch len(l) {
	case 1:
		return l[0]
	case 0:
		return DefaultDensity
	default:
		r.g.logger.Warn("extra densities ignored", "scenario", r.name, "given", l, "used", l[0])
		return l[0]
	}
}

func (r *run) fallback(l []float64, v float64) {
	r.g.logger.Warn("density list length does not fit, default used for all",
		"scenario", r.name, "given", l, "default", v)
}
