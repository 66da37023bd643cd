package sim

import (
	"fmt"
)

// SchedulingPolicy encapsulates the selection and preemption rules of a scheduling
// algorithm. The Simulator owns the tick loop and calls into the policy at fixed
// points of each tick; the policy owns the ready set.
type SchedulingPolicy interface {
	// Name returns the algorithm key ("fcfs", "sjf", "rr").
	Name() string
	// Admit inserts a process into the ready set. Called for arrivals and for
	// processes evicted by Preempt.
	Admit(p *Process)
	// Preempt reports whether the running process must give up the CPU before
	// executing this tick, and why.
	Preempt(running *Process) (evict bool, reason string)
	// Select removes and returns the next process to run, or nil if none is ready.
	Select() *Process
	// Executed is called after the running process consumed one tick.
	Executed(p *Process)
	// Ready returns a snapshot of the ready set in policy order of storage.
	Ready() []*Process
}

// Preemption reasons recorded in decision traces.
const (
	ReasonShorterJob     = "shorter-job"
	ReasonQuantumExpired = "quantum-expired"
)

// shorterJob orders processes for SJF: smallest remaining, then earliest
// arrival, then input order. It is a strict total order over distinct processes.
func shorterJob(a, b *Process) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Seq < b.Seq
}

// FCFSPolicy dispatches in arrival order and never preempts.
type FCFSPolicy struct {
	queue ReadyQueue
}

func (f *FCFSPolicy) Name() string { return AlgorithmFCFS }

func (f *FCFSPolicy) Admit(p *Process) { f.queue.Enqueue(p) }

func (f *FCFSPolicy) Preempt(_ *Process) (bool, string) {
	// Non-preemptive: a dispatched process keeps the CPU until it finishes
	return false, ""
}

func (f *FCFSPolicy) Select() *Process { return f.queue.Dequeue() }

func (f *FCFSPolicy) Executed(_ *Process) {}

func (f *FCFSPolicy) Ready() []*Process { return f.queue.Snapshot() }

// SJFPolicy is preemptive Shortest-Job-First (shortest remaining time first).
// The running process is compared against the whole ready set every tick.
// Warning: SJF can starve long processes under sustained arrivals.
type SJFPolicy struct {
	queue ReadyQueue
}

func (s *SJFPolicy) Name() string { return AlgorithmSJF }

func (s *SJFPolicy) Admit(p *Process) { s.queue.Enqueue(p) }

func (s *SJFPolicy) Preempt(running *Process) (bool, string) {
	idx := s.best()
	if idx < 0 {
		return false, ""
	}
	if shorterJob(s.queue.Items()[idx], running) {
		return true, ReasonShorterJob
	}
	return false, ""
}

func (s *SJFPolicy) Select() *Process {
	idx := s.best()
	if idx < 0 {
		return nil
	}
	return s.queue.RemoveAt(idx)
}

func (s *SJFPolicy) Executed(_ *Process) {}

func (s *SJFPolicy) Ready() []*Process { return s.queue.Snapshot() }

// best returns the index of the shortest job in the ready set, or -1 if empty.
func (s *SJFPolicy) best() int {
	idx := -1
	for i, p := range s.queue.Items() {
		if idx < 0 || shorterJob(p, s.queue.Items()[idx]) {
			idx = i
		}
	}
	return idx
}

// RoundRobinPolicy rotates the CPU among ready processes, granting each at most
// Quantum consecutive ticks per dispatch.
type RoundRobinPolicy struct {
	Quantum int
	queue   ReadyQueue
	// used counts ticks executed by the current dispatch; reset on Select.
	used int
}

// NewRoundRobinPolicy creates a Round Robin policy. Panics if quantum is not positive.
func NewRoundRobinPolicy(quantum int) *RoundRobinPolicy {
	if quantum <= 0 {
		panic(fmt.Sprintf("round robin quantum must be positive, got %d", quantum))
	}
	return &RoundRobinPolicy{Quantum: quantum}
}

func (r *RoundRobinPolicy) Name() string { return AlgorithmRR }

func (r *RoundRobinPolicy) Admit(p *Process) { r.queue.Enqueue(p) }

func (r *RoundRobinPolicy) Preempt(_ *Process) (bool, string) {
	if r.used == r.Quantum {
		return true, ReasonQuantumExpired
	}
	return false, ""
}

func (r *RoundRobinPolicy) Select() *Process {
	p := r.queue.Dequeue()
	if p != nil {
		r.used = 0
	}
	return p
}

func (r *RoundRobinPolicy) Executed(_ *Process) { r.used++ }

func (r *RoundRobinPolicy) Ready() []*Process { return r.queue.Snapshot() }

// NewPolicy creates a SchedulingPolicy for the configured algorithm.
// Panics on unrecognized names; callers validate the config first.
func NewPolicy(cfg SimulationConfig) SchedulingPolicy {
	if !IsValidAlgorithm(cfg.Algorithm) {
		panic(fmt.Sprintf("unknown algorithm %q", cfg.Algorithm))
	}
	switch cfg.Algorithm {
	case AlgorithmFCFS:
		return &FCFSPolicy{}
	case AlgorithmSJF:
		return &SJFPolicy{}
	case AlgorithmRR:
		return NewRoundRobinPolicy(cfg.Quantum)
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", cfg.Algorithm))
	}
}
