// SPDX-License-Identifier: MIT
// Package: ops
//
// Functional options for the binary operators. Defaults:
//   • Add, Sub, MulElem keep cancellation zeros
//   • MatMul (and Divide through it) drops them, like a sparse matmat kernel

package ops

// Option customizes a binary operator.
type Option func(*options)

// zeroPolicy is unset until an option picks one; each operator then falls
// back to its own default.
type zeroPolicy int

const (
	zerosDefault zeroPolicy = iota
	zerosPrune
	zerosKeep
)

type options struct {
	zeros zeroPolicy
}

// WithPruneZeros drops result slots whose value is exactly 0.0.
func WithPruneZeros() Option {
	return func(o *options) { o.zeros = zerosPrune }
}

// WithKeepZeros stores every computed slot, including exact zeros.
func WithKeepZeros() Option {
	return func(o *options) { o.zeros = zerosKeep }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// keep reports whether a computed value is stored. pruneByDefault is the
// operator's policy when no option chose one.
func (o options) keep(v float64, pruneByDefault bool) bool {
	if v != 0 {
		return true
	}
	switch o.zeros {
	case zerosPrune:
		return false
	case zerosKeep:
		return true
	default:
		return !pruneByDefault
	}
}
