package sim

import (
	"fmt"
	"math/rand"
	"testing"
)

// procSpec is a compact (name, arrival, burst) triple for building test inputs.
type procSpec struct {
	name    string
	arrival int
	burst   int
}

func newProcs(specs ...procSpec) []*Process {
	out := make([]*Process, len(specs))
	for i, s := range specs {
		out[i] = NewProcess(s.name, s.arrival, s.burst)
	}
	return out
}

// runScenario builds and runs a simulator, failing the test on construction errors.
func runScenario(t *testing.T, cfg SimulationConfig, specs ...procSpec) *Result {
	t.Helper()
	if cfg.ProcessCount == 0 {
		cfg.ProcessCount = len(specs)
	}
	s, err := NewSimulator(cfg, newProcs(specs...))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s.Run()
}

// findProcess returns the named process from either partition of a result.
func findProcess(t *testing.T, res *Result, name string) *Process {
	t.Helper()
	for _, p := range append(append([]*Process{}, res.Finished...), res.Unfinished...) {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("process %s not in result", name)
	return nil
}

// eventsOfKind filters a sorted event list.
func eventsOfKind(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// selections returns "tick:name" strings for every Selected event.
func selections(events []Event) []string {
	var out []string
	for _, e := range eventsOfKind(events, EventSelected) {
		out = append(out, fmt.Sprintf("%d:%s", e.Tick, e.Subject))
	}
	return out
}

// testGenerateProcesses produces a reproducible random workload in arrival order.
func testGenerateProcesses(seed int64, n, maxArrival, maxBurst int) []procSpec {
	rng := rand.New(rand.NewSource(seed))
	specs := make([]procSpec, n)
	for i := range specs {
		specs[i] = procSpec{
			name:    fmt.Sprintf("P%02d", i),
			arrival: rng.Intn(maxArrival + 1),
			burst:   1 + rng.Intn(maxBurst),
		}
	}
	return specs
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
