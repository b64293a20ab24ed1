// SPDX-License-Identifier: MIT

package emit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported indicates a block kind the dialect has no literal for
	// (e.g. a COO batch in CPP).
	ErrUnsupported = errors.New("emit: unsupported block for dialect")

	// ErrInconsistentBatch indicates a COO batch whose members differ in shape.
	ErrInconsistentBatch = errors.New("emit: inconsistent batch shape")

	// ErrEmptyBlock indicates a block with no matrix attached.
	ErrEmptyBlock = errors.New("emit: block has no matrix")

	// ErrUnknownDialect is returned by ParseDialect.
	ErrUnknownDialect = errors.New("emit: unknown dialect")
)

func emitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
