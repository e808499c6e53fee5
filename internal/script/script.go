// Package script loads and runs stub scenario scripts: YAML files that name a
// stubbed contract, the presets and overrides to build it with, and a list of
// calls to make against the resulting stub.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is wrapped by every validation failure.
var ErrInvalidScript = errors.New("invalid script")

// Script is a parsed scenario script.
type Script struct {
	Name      string         `yaml:"name"`
	Contract  string         `yaml:"contract"`
	Presets   []string       `yaml:"presets,omitempty"`
	Overrides map[string]any `yaml:"overrides,omitempty"`
	Calls     []string       `yaml:"calls"`

	// Path is the file the script was loaded from, if any.
	Path string `yaml:"-"`
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes and validates a script. Unknown top-level keys are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the fields the runner depends on.
func (s *Script) Validate() error {
	if s.Contract == "" {
		return fmt.Errorf("%w: contract is required", ErrInvalidScript)
	}
	if _, err := LookupContract(s.Contract); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if len(s.Calls) == 0 {
		return fmt.Errorf("%w: at least one call is required", ErrInvalidScript)
	}
	return nil
}

// DisplayName returns Name, falling back to Path and then the contract.
func (s *Script) DisplayName() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Path != "":
		return s.Path
	default:
		return s.Contract
	}
}
