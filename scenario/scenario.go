// Package scenario runs named cleaning problems through the search engine
// and renders the outcome as text.
//
// Scenarios come from Builtin or from a YAML document:
//
//	- name: Path with wall
//	  rows: [XWD, EEE, DWE]
//	  expect:
//	    moves: ddurru
//	- name: Unreachable dirt
//	  rows: [XWD, WWW, DEE]
//	  expect:
//	    unsolvable: true
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoScenarios indicates an empty scenario document.
	ErrNoScenarios = errors.New("scenario: no scenarios defined")
	// ErrDuplicateName indicates two scenarios share a name.
	ErrDuplicateName = errors.New("scenario: duplicate scenario name")
	// ErrScenarioInvalid indicates a scenario missing its name or rows.
	ErrScenarioInvalid = errors.New("scenario: invalid scenario")
	// ErrExpectationMismatch indicates a result that differs from the expectation.
	ErrExpectationMismatch = errors.New("scenario: result does not match expectation")
)

// Scenario is one named grid to clean.
type Scenario struct {
	Name   string       `yaml:"name"`
	Rows   []string     `yaml:"rows"`
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation constrains a scenario's result. Unset fields are not checked.
type Expectation struct {
	// Moves is the exact move string, in the u/d/l/r alphabet.
	Moves *string `yaml:"moves,omitempty"`
	// Length is the exact number of moves.
	Length *int `yaml:"length,omitempty"`
	// Unsolvable requires a "no solution" outcome.
	Unsolvable bool `yaml:"unsolvable,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// Builtin returns the reference scenarios.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:   "Simple horizontal path",
			Rows:   []string{"XED"},
			Expect: &Expectation{Moves: ptr("rr"), Length: ptr(2)},
		},
		{
			Name:   "Path with vertical movement",
			Rows:   []string{"XDD", "DEE"},
			Expect: &Expectation{Moves: ptr("durr"), Length: ptr(4)},
		},
		{
			Name:   "Path with wall",
			Rows:   []string{"XWD", "EEE", "DWE"},
			Expect: &Expectation{Moves: ptr("ddurru"), Length: ptr(6)},
		},
		{
			Name:   "Unreachable dirt",
			Rows:   []string{"XWD", "WWW", "DEE"},
			Expect: &Expectation{Unsolvable: true},
		},
		{
			Name:   "Complex path",
			Rows:   []string{"EDD", "DEE", "DEX"},
			Expect: &Expectation{Moves: ptr("uuldld"), Length: ptr(6)},
		},
		{
			Name:   "Already clean",
			Rows:   []string{"EEW", "XEE"},
			Expect: &Expectation{Moves: ptr(""), Length: ptr(0)},
		},
	}
}

// Load decodes a YAML list of scenarios. Unknown fields are rejected.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []Scenario
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFile reads scenarios from a YAML file.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

// Validate checks names and rows are present and names are unique.
// Grid contents are validated later, when each scenario runs.
func Validate(scenarios []Scenario) error {
	if len(scenarios) == 0 {
		return ErrNoScenarios
	}
	seen := make(map[string]struct{}, len(scenarios))
	for i, s := range scenarios {
		if s.Name == "" {
			return fmt.Errorf("%w: scenario %d has no name", ErrScenarioInvalid, i)
		}
		if len(s.Rows) == 0 {
			return fmt.Errorf("%w: %q has no rows", ErrScenarioInvalid, s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
