// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Backends a profile may select.
const (
	backendDefault = "default" // native.Default(), the linked GSL when built with -tags gsl
	backendFake    = "fake"    // nativetest, always available
)

// Profile configures one selftest run.
type Profile struct {
	Backend   string   `yaml:"backend"`
	Tolerance float64  `yaml:"tolerance"`
	Checks    []string `yaml:"checks"` // empty runs every check
}

func defaultProfile() Profile {
	return Profile{Backend: backendDefault, Tolerance: 1e-12}
}

// loadProfile reads a yaml profile. Unknown keys are rejected and omitted
// keys keep their defaults.
func loadProfile(path string) (Profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}

	return p, p.validate()
}

func (p Profile) validate() error {
	switch p.Backend {
	case backendDefault, backendFake:
	default:
		return fmt.Errorf("profile: backend %q: want %q or %q", p.Backend, backendDefault, backendFake)
	}
	if p.Tolerance <= 0 {
		return fmt.Errorf("profile: tolerance must be positive, got %g", p.Tolerance)
	}
	for _, name := range p.Checks {
		if _, ok := checkByName(name); !ok {
			return fmt.Errorf("profile: unknown check %q", name)
		}
	}

	return nil
}
