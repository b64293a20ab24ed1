// SPDX-License-Identifier: MIT
// Package: fixture
//
// Batch manifests. Example:
//
//	cases:
//	  - name: add-3x3
//	    scenario: addsubtimes
//	    densities: [0.5, 0.3]
//	    seed: 7
//	    output: cpp/add_3x3.txt
//	  - name: invoke-permuted
//	    scenario: invoke2d
//	    rows: 5
//	    permute: true
//
// Unknown keys are rejected. Omitted numeric fields take the scenario
// defaults; an empty output means standard output.

package fixture

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest is an ordered list of fixture cases.
type Manifest struct {
	Cases []Case `yaml:"cases"`
}

// Case is one scenario invocation inside a manifest.
type Case struct {
	Name     string `yaml:"name,omitempty"`
	Scenario string `yaml:"scenario"`
	Params   `yaml:",inline"`
	Output   string `yaml:"output,omitempty"`
	Table    bool   `yaml:"table,omitempty"`
}

// LoadManifest decodes and validates a YAML manifest.
// Errors: decoding errors (unknown keys included), ErrInvalidManifest,
// ErrUnknownScenario.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fixtureErrorf("LoadManifest", fmt.Errorf("empty document: %w", ErrInvalidManifest))
		}
		return nil, fixtureErrorf("LoadManifest", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fixtureErrorf("LoadManifest", err)
	}

	return &m, nil
}

// Validate checks that there is at least one case, that non-empty names are
// unique and that every scenario exists.
func (m *Manifest) Validate() error {
	if len(m.Cases) == 0 {
		return fmt.Errorf("no cases: %w", ErrInvalidManifest)
	}
	seen := make(map[string]int, len(m.Cases))
	for i, c := range m.Cases {
		if c.Name != "" {
			if j, dup := seen[c.Name]; dup {
				return fmt.Errorf("case %d: name %q already used by case %d: %w", i, c.Name, j, ErrInvalidManifest)
			}
			seen[c.Name] = i
		}
		if _, err := lookup(c.Scenario); err != nil {
			return fmt.Errorf("case %d (%s): %w", i, c.Name, err)
		}
	}

	return nil
}

// Marshal renders the manifest back to YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}
