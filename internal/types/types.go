package types

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is the single failure kind shared by every operation.
// Package specific errors wrap it so callers can match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Query is one request to evaluate, either typed on the command line
// or read from a batch file.
type Query struct {
	Op       string
	Args     []int
	Filename string
	Line     int
	Raw      string
}

// Result represents the outcome of evaluating a single query.
type Result struct {
	Op       string   `json:"op"`
	Input    string   `json:"input"`
	Value    string   `json:"value,omitempty"`
	Message  string   `json:"message,omitempty"`
	Filename string   `json:"filename,omitempty"`
	Line     int      `json:"line,omitempty"`
	Severity Severity `json:"severity"`
}

// Failed reports whether the result carries a finding.
func (r Result) Failed() bool {
	return r.Message != "" && r.Severity != SeverityOff
}

type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return SeverityOff, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityOff, fmt.Errorf("unknown severity %q", s)
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseSeverity(value.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ConfigRule overrides how an operation reports invalid input.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}
