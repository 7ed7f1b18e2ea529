package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Scenario is a named list of cases.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Cases are run in order; each is independent.
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case builds one value and checks the result.
type Case struct {
	Name string `yaml:"name" json:"name"`

	// Type is TypeLtree or TypeLquery.
	Type string `yaml:"type" json:"type"`

	// Input holds dotted text inputs, concatenated in order.
	Input []string `yaml:"input,omitempty" json:"input,omitempty"`

	// Labels is an optional labels input appended after Input. Elements are
	// not split on ".".
	Labels []string `yaml:"labels,omitempty" json:"labels,omitempty"`

	// Concat lists text inputs applied one Concat at a time; each step's
	// rendering is recorded.
	Concat []string `yaml:"concat,omitempty" json:"concat,omitempty"`

	// Want is the expected final rendering.
	Want *string `yaml:"want,omitempty" json:"want,omitempty"`

	// Len is the expected final element count.
	Len *int `yaml:"len,omitempty" json:"len,omitempty"`

	// Error is the expected error kind, ErrorValidation or ErrorParse.
	// Parse errors are checked by decoding the joined input as wire text,
	// so parse cases cannot set Labels or Concat.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Case types.
const (
	TypeLtree  = "ltree"
	TypeLquery = "lquery"
)

// Expected error kinds.
const (
	ErrorValidation = "validation"
	ErrorParse      = "parse"
)

// LoadScenario reads a scenario from a .yaml, .yml or .cue file.
// YAML is decoded strictly: unknown fields are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	switch filepath.Ext(path) {
	case ".cue":
		if err := decodeCUE(path, data, &scenario); err != nil {
			return nil, err
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&scenario); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadScenarios loads every .yaml, .yml and .cue file in dir, sorted by
// file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario dir: %w", err)
	}

	var scenarios []*Scenario
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml", ".cue":
		default:
			continue
		}
		s, err := LoadScenario(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func decodeCUE(path string, data []byte, out *Scenario) error {
	v := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid CUE: %w", err)
	}
	if err := v.Decode(out); err != nil {
		return fmt.Errorf("failed to decode CUE: %w", err)
	}
	return nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Type != TypeLtree && c.Type != TypeLquery {
			return fmt.Errorf("cases[%d]: type must be %q or %q", i, TypeLtree, TypeLquery)
		}
		switch c.Error {
		case "", ErrorValidation, ErrorParse:
		default:
			return fmt.Errorf("cases[%d]: unknown error kind %q", i, c.Error)
		}
		if c.Error != "" && (c.Want != nil || c.Len != nil) {
			return fmt.Errorf("cases[%d]: error cases cannot set want or len", i)
		}
		if c.Error == ErrorParse && (len(c.Labels) > 0 || len(c.Concat) > 0) {
			return fmt.Errorf("cases[%d]: parse error cases decode input only; labels and concat are not allowed", i)
		}
	}
	return nil
}
