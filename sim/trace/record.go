// Package trace provides decision-trace recording for scheduling policy analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Dispatch reasons: why the CPU slot was empty when a process was selected.
const (
	DispatchInitial         = "initial"          // first dispatch of the run
	DispatchAfterFinish     = "after-finish"     // previous process finished this tick
	DispatchAfterPreemption = "after-preemption" // previous process was evicted this tick
	DispatchAfterIdle       = "after-idle"       // CPU was idle on the previous tick
)

// DispatchRecord captures a single selection of a process onto the CPU.
type DispatchRecord struct {
	Process   string
	Clock     int64
	Remaining int    // remaining burst at dispatch
	Previous  string // last process dispatched before this one; empty for the first dispatch
	Reason    string
}

// PreemptionRecord captures a running process being returned to the ready set.
type PreemptionRecord struct {
	Process   string
	Clock     int64
	Remaining int
	Reason    string // policy-specific, e.g. "shorter-job" or "quantum-expired"
}
