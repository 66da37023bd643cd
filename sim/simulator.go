// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Result is the outcome of a completed run.
type Result struct {
	Config     SimulationConfig
	Events     []Event    // sorted by (Tick, Kind priority)
	Finished   []*Process // sorted by name
	Unfinished []*Process // sorted by name
}

// Simulator is the core object that holds simulation time, the running slot and the tick loop.
// Every run is a deterministic sequential fold over ticks [0, Horizon).
type Simulator struct {
	Clock   int
	Horizon int
	Config  SimulationConfig
	Policy  SchedulingPolicy
	// Processes in arrival order (stable with respect to input order)
	Processes []*Process
	// Running is the process holding the CPU, nil when the CPU is free.
	Running *Process
	Log     *EventLog
	// Trace records dispatch and preemption decisions; nil disables recording.
	Trace *trace.SimulationTrace

	nextArrival int
	lastRunner  string // name of the last process dispatched
	dispatches  int
	finalized   bool
}

// NewSimulator validates the configuration and process list and prepares a run.
// Processes are expected in the loader's arrival-sorted order; each process's Seq
// is set to its position in that list and the list is stable-sorted by arrival.
func NewSimulator(cfg SimulationConfig, processes []*Process) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	procs := make([]*Process, len(processes))
	copy(procs, processes)
	seen := make(map[string]bool, len(procs))
	for i, p := range procs {
		if p == nil {
			return nil, fmt.Errorf("process[%d] is nil", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate process name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Arrival < 0 {
			return nil, fmt.Errorf("process %s: arrival must be non-negative, got %d", p.Name, p.Arrival)
		}
		if p.Burst <= 0 {
			return nil, fmt.Errorf("process %s: burst must be positive, got %d", p.Name, p.Burst)
		}
		if p.Remaining != p.Burst || p.Started() || p.Finished() {
			return nil, fmt.Errorf("process %s: already simulated", p.Name)
		}
		p.Seq = i
		p.State = StatePending
	}
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})

	return &Simulator{
		Clock:     0,
		Horizon:   cfg.RunFor,
		Config:    cfg,
		Policy:    NewPolicy(cfg),
		Processes: procs,
		Log:       &EventLog{},
	}, nil
}

// Run simulates every tick of the horizon and returns the result.
func (sim *Simulator) Run() *Result {
	logrus.Infof("Starting %s simulation: %d processes, horizon=%d ticks",
		sim.Policy.Name(), len(sim.Processes), sim.Horizon)
	for t := 0; t < sim.Horizon; t++ {
		sim.Step(t)
	}
	res := sim.Finalize()
	logrus.Infof("[tick %03d] Simulation ended: %d finished, %d unfinished",
		sim.Horizon, len(res.Finished), len(res.Unfinished))
	return res
}

// Step simulates a single tick. Ticks must be stepped in order starting at 0.
// The order of the phases below resolves all same-tick interactions.
func (sim *Simulator) Step(now int) {
	if sim.finalized {
		panic("Step: simulation already finalized")
	}
	sim.Clock = now
	vacated := ""

	// Completion of the previous tick's execution
	if sim.Running != nil && sim.Running.Remaining == 0 {
		sim.finish(sim.Running, now)
		sim.Running = nil
		vacated = trace.DispatchAfterFinish
	}

	// Arrivals, in arrival-sorted order
	for sim.nextArrival < len(sim.Processes) && sim.Processes[sim.nextArrival].Arrival <= now {
		p := sim.Processes[sim.nextArrival]
		sim.nextArrival++
		p.State = StateReady
		sim.record(Event{Tick: now, Kind: EventArrived, Subject: p.Name})
		sim.Policy.Admit(p)
	}

	// Preemption runs after arrivals so an evicted process queues behind them
	if sim.Running != nil {
		if evict, reason := sim.Policy.Preempt(sim.Running); evict {
			p := sim.Running
			sim.Running = nil
			p.State = StateReady
			sim.Policy.Admit(p)
			vacated = trace.DispatchAfterPreemption
			logrus.Debugf("[tick %03d] %s preempted (%s, remaining %d)", now, p.Name, reason, p.Remaining)
			if sim.Trace != nil {
				sim.Trace.RecordPreemption(trace.PreemptionRecord{
					Process:   p.Name,
					Clock:     int64(now),
					Remaining: p.Remaining,
					Reason:    reason,
				})
			}
		}
	}

	if sim.Running == nil {
		if p := sim.Policy.Select(); p != nil {
			sim.dispatch(p, now, vacated)
		}
	}

	if sim.Running != nil {
		sim.Running.execute()
		sim.Policy.Executed(sim.Running)
	} else {
		sim.record(Event{Tick: now, Kind: EventIdle})
	}
}

// Finalize settles a process that consumed its last tick at Horizon-1 and builds the result.
// Calling Finalize more than once returns an equivalent result.
func (sim *Simulator) Finalize() *Result {
	if !sim.finalized {
		if sim.Running != nil && sim.Running.Remaining == 0 {
			sim.finish(sim.Running, sim.Horizon)
			sim.Running = nil
		}
		sim.Clock = sim.Horizon
		sim.finalized = true
	}

	res := &Result{
		Config: sim.Config,
		Events: sim.Log.Sorted(),
	}
	for _, p := range sim.Processes {
		if p.Finished() {
			res.Finished = append(res.Finished, p)
		} else {
			res.Unfinished = append(res.Unfinished, p)
		}
	}
	sortByName(res.Finished)
	sortByName(res.Unfinished)
	return res
}

func (sim *Simulator) dispatch(p *Process, now int, vacated string) {
	reason := vacated
	if reason == "" {
		if sim.dispatches == 0 {
			reason = trace.DispatchInitial
		} else {
			reason = trace.DispatchAfterIdle
		}
	}
	if !p.Started() {
		p.markStarted(now)
	}
	p.State = StateRunning
	sim.Running = p
	sim.record(Event{Tick: now, Kind: EventSelected, Subject: p.Name, Remaining: p.Remaining})
	if sim.Trace != nil {
		sim.Trace.RecordDispatch(trace.DispatchRecord{
			Process:   p.Name,
			Clock:     int64(now),
			Remaining: p.Remaining,
			Previous:  sim.lastRunner,
			Reason:    reason,
		})
	}
	sim.lastRunner = p.Name
	sim.dispatches++
}

func (sim *Simulator) finish(p *Process, now int) {
	p.markFinished(now)
	sim.record(Event{Tick: now, Kind: EventFinished, Subject: p.Name})
}

func (sim *Simulator) record(e Event) {
	logrus.Debugf("%s", e)
	sim.Log.Append(e)
}

func sortByName(procs []*Process) {
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Name < procs[j].Name
	})
}
