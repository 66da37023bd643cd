// Package sim provides the core discrete-tick simulation engine for schedsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (pending → ready → running → finished)
//   - scheduler.go: SchedulingPolicy and the FCFS, SJF and Round Robin variants
//   - simulator.go: The tick loop and the fixed order of its per-tick phases
//
// # Architecture
//
// The sim package owns the engine; the collaborators live in sub-packages:
//   - sim/workload/: input loading (directive and YAML formats), validation, synthesis
//   - sim/report/: textual report, summary table and YAML summary rendering
//   - sim/trace/: dispatch and preemption decision recording
//
// # Determinism
//
// A run is a sequential fold over ticks [0, RunFor). Every tie is broken by a total
// order (arrival, then input position), and the event log is stable-sorted by
// (tick, kind priority) once at the end, so identical inputs produce identical logs.
package sim
