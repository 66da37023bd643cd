package sim

import (
	"strings"
	"testing"
)

func TestSimulationConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SimulationConfig
		wantErr string
	}{
		{"valid fcfs", SimulationConfig{ProcessCount: 1, RunFor: 10, Algorithm: "fcfs"}, ""},
		{"valid rr", SimulationConfig{ProcessCount: 1, RunFor: 10, Algorithm: "rr", Quantum: 2}, ""},
		{"quantum ignored for sjf", SimulationConfig{RunFor: 10, Algorithm: "sjf", Quantum: -1}, ""},
		{"zero horizon", SimulationConfig{RunFor: 0, Algorithm: "fcfs"}, "runfor"},
		{"unknown algorithm", SimulationConfig{RunFor: 5, Algorithm: "lottery"}, "unknown algorithm"},
		{"uppercase algorithm", SimulationConfig{RunFor: 5, Algorithm: "FCFS"}, "unknown algorithm"},
		{"rr without quantum", SimulationConfig{RunFor: 5, Algorithm: "rr"}, "quantum"},
		{"negative count", SimulationConfig{ProcessCount: -1, RunFor: 5, Algorithm: "fcfs"}, "processcount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestAlgorithmDisplayName(t *testing.T) {
	if got := AlgorithmDisplayName("fcfs"); got != "First-Come First-Served" {
		t.Errorf("fcfs: %q", got)
	}
	if got := AlgorithmDisplayName("sjf"); got != "preemptive Shortest Job First" {
		t.Errorf("sjf: %q", got)
	}
	if got := AlgorithmDisplayName("rr"); got != "Round-Robin" {
		t.Errorf("rr: %q", got)
	}
	if got := AlgorithmDisplayName("other"); got != "other" {
		t.Errorf("fallback: %q", got)
	}
}
