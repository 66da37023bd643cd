// Package workload loads, validates and synthesizes scheduling scenarios.
package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// Scenario is a parsed simulation input, independent of its source format.
// Pointer fields are nil when the directive or key was absent.
type Scenario struct {
	ProcessCount *int          `yaml:"processcount"`
	RunFor       *int          `yaml:"runfor"`
	Use          string        `yaml:"use"`
	Quantum      *int          `yaml:"quantum,omitempty"`
	Processes    []ProcessSpec `yaml:"processes"`
}

// ProcessSpec is a process seed: name, arrival tick and burst length.
type ProcessSpec struct {
	Name    string `yaml:"name"`
	Arrival int    `yaml:"arrival"`
	Burst   int    `yaml:"burst"`
}

// LoadScenario reads, parses and validates a scenario file.
// Files ending in .yaml or .yml use the YAML format; anything else is parsed
// as directives. Returns a *FileError, *ParseError or *ValidationError.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}

	var sc *Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sc, err = DecodeScenarioYAML(path, bytes.NewReader(data))
	default:
		sc, err = ParseDirectives(path, bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if sc.Quantum != nil && sc.Use != sim.AlgorithmRR {
		logrus.Warnf("%s: quantum %d ignored for algorithm %q", path, *sc.Quantum, sc.Use)
	}
	return sc, nil
}

// DecodeScenarioYAML parses a YAML scenario.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func DecodeScenarioYAML(path string, r io.Reader) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Msg: "empty scenario"}
		}
		return nil, &ParseError{Path: path, Msg: "invalid YAML scenario", Err: err}
	}
	sc.Use = strings.ToLower(strings.TrimSpace(sc.Use))
	return &sc, nil
}

// Validate checks that all fields in the scenario are present and consistent.
// Returns the first violation as a *ValidationError.
func (s *Scenario) Validate() error {
	if s.ProcessCount == nil {
		return validationErrorf("missing parameter processcount")
	}
	if s.RunFor == nil {
		return validationErrorf("missing parameter runfor")
	}
	if s.Use == "" {
		return validationErrorf("missing parameter use")
	}
	if !sim.IsValidAlgorithm(s.Use) {
		return validationErrorf("unknown algorithm %q; valid: fcfs, sjf, rr", s.Use)
	}
	if s.Use == sim.AlgorithmRR {
		if s.Quantum == nil {
			return validationErrorf("missing quantum parameter when use is 'rr'")
		}
		if *s.Quantum <= 0 {
			return validationErrorf("quantum must be positive, got %d", *s.Quantum)
		}
	}
	if *s.RunFor <= 0 {
		return validationErrorf("runfor must be positive, got %d", *s.RunFor)
	}
	if *s.ProcessCount < 0 {
		return validationErrorf("processcount must be non-negative, got %d", *s.ProcessCount)
	}
	if *s.ProcessCount != len(s.Processes) {
		return validationErrorf("processcount %d does not match number of processes defined (%d)",
			*s.ProcessCount, len(s.Processes))
	}
	seen := make(map[string]bool, len(s.Processes))
	for i, p := range s.Processes {
		if err := validateProcess(p, i); err != nil {
			return err
		}
		if seen[p.Name] {
			return validationErrorf("process[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func validateProcess(p ProcessSpec, idx int) error {
	prefix := fmt.Sprintf("process[%d]", idx)
	if p.Name == "" {
		return validationErrorf("%s: missing name", prefix)
	}
	if strings.ContainsAny(p.Name, " \t#") {
		return validationErrorf("%s: name %q must not contain whitespace or '#'", prefix, p.Name)
	}
	if p.Arrival < 0 {
		return validationErrorf("%s (%s): arrival must be non-negative, got %d", prefix, p.Name, p.Arrival)
	}
	if p.Burst <= 0 {
		return validationErrorf("%s (%s): burst must be positive, got %d", prefix, p.Name, p.Burst)
	}
	return nil
}

// Config returns the simulation configuration of a validated scenario.
// The quantum is only carried for rr.
func (s *Scenario) Config() sim.SimulationConfig {
	cfg := sim.SimulationConfig{Algorithm: s.Use}
	if s.ProcessCount != nil {
		cfg.ProcessCount = *s.ProcessCount
	}
	if s.RunFor != nil {
		cfg.RunFor = *s.RunFor
	}
	if s.Use == sim.AlgorithmRR && s.Quantum != nil {
		cfg.Quantum = *s.Quantum
	}
	return cfg
}

// SortedProcesses returns fresh process records sorted by arrival.
// The sort is stable, so processes arriving together keep their input order.
func (s *Scenario) SortedProcesses() []*sim.Process {
	specs := make([]ProcessSpec, len(s.Processes))
	copy(specs, s.Processes)
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Arrival < specs[j].Arrival
	})
	procs := make([]*sim.Process, len(specs))
	for i, p := range specs {
		procs[i] = sim.NewProcess(p.Name, p.Arrival, p.Burst)
	}
	return procs
}
