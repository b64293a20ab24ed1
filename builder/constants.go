// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the generators.
package builder

// Method names used to prefix errors with the constructor name.
const (
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodPermute is the canonical name for the Permute utility.
	MethodPermute = "Permute"
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
)

// MinDim is the smallest admissible row or column count.
const MinDim = 1

// Density bounds (closed interval).
const (
	MinProbability = 0.0 // every cell masked out
	MaxProbability = 1.0 // every non-zero magnitude kept
)
