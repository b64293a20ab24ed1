// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsegen/sparse"
)

var (
	// ErrUnknownScenario is returned for a scenario name not in the registry.
	ErrUnknownScenario = errors.New("fixture: unknown scenario")

	// ErrInvalidParams indicates parameters no scenario can run with
	// (e.g. a batch size < 1). It also matches sparse.ErrInvalidArgument.
	ErrInvalidParams = errors.New("fixture: invalid parameters")

	// ErrInvalidManifest indicates a manifest that decodes but is unusable.
	ErrInvalidManifest = errors.New("fixture: invalid manifest")
)

func fixtureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func invalidParams(format string, args ...any) error {
	return fmt.Errorf("%s: %w (%w)", fmt.Sprintf(format, args...), ErrInvalidParams, sparse.ErrInvalidArgument)
}
