package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int
	Preemptions          int
	ContextSwitches      int            // dispatches that replaced a different process
	UniqueProcesses      int            // processes dispatched at least once
	DispatchDistribution map[string]int // process name → dispatch count
	PreemptionReasons    map[string]int // reason → count
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDistribution: make(map[string]int),
		PreemptionReasons:    make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.DispatchDistribution[d.Process]++
		if d.Previous != "" && d.Previous != d.Process {
			summary.ContextSwitches++
		}
	}

	summary.Preemptions = len(st.Preemptions)
	for _, p := range st.Preemptions {
		summary.PreemptionReasons[p.Reason]++
	}

	summary.UniqueProcesses = len(summary.DispatchDistribution)

	return summary
}
