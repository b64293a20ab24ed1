// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     The generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithSource.

package builder

import "github.com/katalvlaran/sparsegen/entropy"

// BuilderOption customizes a generator by mutating a builderConfig before
// any draw happens.
type BuilderOption func(*builderConfig)

// WithSource attaches an existing entropy source. Several generator calls
// sharing one source continue its stream, which is how a scenario draws its
// operands one after another. Panics on nil.
func WithSource(src entropy.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithSeed attaches a fresh MT19937 seeded with seed, equivalent to
// numpy.random.seed(seed).
func WithSeed(seed uint32) BuilderOption {
	return func(c *builderConfig) {
		c.src = entropy.NewMT19937(seed)
	}
}
