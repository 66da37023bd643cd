// Defines the Process struct that models a single schedulable process in the simulation.
// Tracks arrival, burst, remaining CPU time, and first-dispatch/finish timestamps.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StatePending  ProcessState = "pending"  // not yet arrived
	StateReady    ProcessState = "ready"    // arrived, waiting for the CPU
	StateRunning  ProcessState = "running"  // holds the CPU
	StateFinished ProcessState = "finished" // remaining reached 0
)

// Process models a single process's lifecycle in the simulation.
// Processes are created by the loader and owned by the Simulator for the
// duration of a run; only the Simulator mutates them.
type Process struct {
	Name    string // Unique identifier, stable for the run
	Arrival int    // Tick at which the process becomes eligible to run
	Burst   int    // Total CPU ticks required, immutable

	Remaining int          // CPU ticks still owed; starts at Burst
	State     ProcessState // pending, ready, running, finished

	StartTime  *int // Tick of first dispatch; nil until dispatched
	FinishTime *int // Tick at which Remaining reached 0; nil if unfinished

	// Seq is the process's position in the arrival-sorted input list.
	// It is the final tie-break whenever two processes otherwise compare equal.
	Seq int
}

// NewProcess creates a pending process with Remaining initialized to burst.
func NewProcess(name string, arrival, burst int) *Process {
	return &Process{
		Name:      name,
		Arrival:   arrival,
		Burst:     burst,
		Remaining: burst,
		State:     StatePending,
	}
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool {
	return p.StartTime != nil
}

// Finished reports whether the process completed within the horizon.
func (p *Process) Finished() bool {
	return p.FinishTime != nil
}

// markStarted records the first dispatch. Panics if called twice.
func (p *Process) markStarted(tick int) {
	if p.StartTime != nil {
		panic(fmt.Sprintf("process %s: start time already set to %d", p.Name, *p.StartTime))
	}
	p.StartTime = &tick
}

// markFinished records completion. Panics if called twice or while work is still owed.
func (p *Process) markFinished(tick int) {
	if p.FinishTime != nil {
		panic(fmt.Sprintf("process %s: finish time already set to %d", p.Name, *p.FinishTime))
	}
	if p.Remaining != 0 {
		panic(fmt.Sprintf("process %s: finished with %d ticks remaining", p.Name, p.Remaining))
	}
	p.FinishTime = &tick
	p.State = StateFinished
}

// execute consumes one tick of CPU time.
func (p *Process) execute() {
	if p.Remaining <= 0 {
		panic(fmt.Sprintf("process %s: executed with no remaining burst", p.Name))
	}
	p.Remaining--
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (Name: %s, State: %s, Arrival: %d, Burst: %d, Remaining: %d)",
		p.Name, p.State, p.Arrival, p.Burst, p.Remaining)
}
