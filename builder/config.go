// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • The default source is nil: stochastic constructors then fail with
//     ErrNeedRandSource instead of silently picking a seed.

package builder

import "github.com/katalvlaran/sparsegen/entropy"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE; the source it points to is shared and consumed.
type builderConfig struct {
	// src supplies every uniform draw; nil means "no randomness configured".
	src entropy.Source
}

// newBuilderConfig applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
