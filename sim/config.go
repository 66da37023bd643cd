package sim

import "fmt"

// Algorithm keys accepted by the `use` directive.
const (
	AlgorithmFCFS = "fcfs"
	AlgorithmSJF  = "sjf"
	AlgorithmRR   = "rr"
)

// validAlgorithms is the set of recognized algorithm keys.
var validAlgorithms = map[string]bool{AlgorithmFCFS: true, AlgorithmSJF: true, AlgorithmRR: true}

// algorithmDisplayNames maps algorithm keys to the names used in reports.
var algorithmDisplayNames = map[string]string{
	AlgorithmFCFS: "First-Come First-Served",
	AlgorithmSJF:  "preemptive Shortest Job First",
	AlgorithmRR:   "Round-Robin",
}

// IsValidAlgorithm returns true if name is a recognized algorithm key.
// Matching is case-sensitive; loaders lower-case user input first.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[name]
}

// AlgorithmDisplayName returns the human-readable name of an algorithm key,
// or the key itself if it is not recognized.
func AlgorithmDisplayName(name string) string {
	if d, ok := algorithmDisplayNames[name]; ok {
		return d
	}
	return name
}

// SimulationConfig holds the run parameters produced by the input loader.
type SimulationConfig struct {
	ProcessCount int    // declared process count
	RunFor       int    // horizon in ticks (must be > 0)
	Algorithm    string // "fcfs", "sjf" or "rr"
	Quantum      int    // time slice for rr (must be > 0 for rr, ignored otherwise)
}

// Validate checks that the configuration can drive a simulation.
func (c SimulationConfig) Validate() error {
	if c.RunFor <= 0 {
		return fmt.Errorf("runfor must be positive, got %d", c.RunFor)
	}
	if c.ProcessCount < 0 {
		return fmt.Errorf("processcount must be non-negative, got %d", c.ProcessCount)
	}
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("unknown algorithm %q; valid: fcfs, sjf, rr", c.Algorithm)
	}
	if c.Algorithm == AlgorithmRR && c.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive for rr, got %d", c.Quantum)
	}
	return nil
}
