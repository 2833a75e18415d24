package racket

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// A conformance suite is a YAML file holding named programs with their
// expected outputs. Each case runs in a fresh interpreter. A case states
// either the expected output lines (values and check-expect outcomes, in
// statement order) or the expected error string, never both.

// Suite is a parsed conformance suite file.
type Suite struct {
	Name  string      `yaml:"name"`
	Cases []SuiteCase `yaml:"cases"`
}

// SuiteCase is one program with its expectations.
type SuiteCase struct {
	Name    string   `yaml:"name"`
	Source  string   `yaml:"source"`
	Outputs []string `yaml:"outputs"`
	Error   string   `yaml:"error"`
}

// CaseResult reports one executed case.
type CaseResult struct {
	Name   string
	Passed bool
	Detail string // set when the case failed
}

// LoadSuite parses a suite file from disk and validates it.
func LoadSuite(path string) (*Suite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", path, err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("suite: %s is empty", path)
		}
		return nil, fmt.Errorf("suite: parse %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite %q: no cases", s.Name)
	}
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("suite %q: case %d has no name", s.Name, i)
		}
		if strings.TrimSpace(c.Source) == "" {
			return fmt.Errorf("suite %q: case %q has no source", s.Name, c.Name)
		}
		if len(c.Outputs) > 0 && c.Error != "" {
			return fmt.Errorf("suite %q: case %q states both outputs and an error", s.Name, c.Name)
		}
	}
	return nil
}

// Run executes every case and reports the results in file order.
func (s *Suite) Run() []CaseResult {
	out := make([]CaseResult, 0, len(s.Cases))
	for _, c := range s.Cases {
		out = append(out, runCase(c))
	}
	return out
}

func runCase(c SuiteCase) CaseResult {
	res := Interpret(c.Source)

	var got []string
	for _, o := range res.Outputs {
		if o.Kind == OutTest {
			got = append(got, o.Test.String())
		} else {
			got = append(got, o.Text)
		}
	}

	if c.Error != "" {
		if res.Err == nil {
			return CaseResult{Name: c.Name, Detail: fmt.Sprintf("expected error %q, got none", c.Error)}
		}
		if res.Err.Error() != c.Error {
			return CaseResult{Name: c.Name, Detail: fmt.Sprintf("expected error %q, got %q", c.Error, res.Err.Error())}
		}
		return CaseResult{Name: c.Name, Passed: true}
	}

	if res.Err != nil {
		return CaseResult{Name: c.Name, Detail: fmt.Sprintf("unexpected error: %s", res.Err.Error())}
	}
	if len(got) != len(c.Outputs) {
		return CaseResult{Name: c.Name,
			Detail: fmt.Sprintf("expected %d output(s), got %d: %s", len(c.Outputs), len(got), strings.Join(got, " | "))}
	}
	for i := range got {
		if got[i] != c.Outputs[i] {
			return CaseResult{Name: c.Name,
				Detail: fmt.Sprintf("output %d: expected %q, got %q", i, c.Outputs[i], got[i])}
		}
	}
	return CaseResult{Name: c.Name, Passed: true}
}
