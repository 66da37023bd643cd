// Derives per-process timing metrics (waiting, turnaround, response) and run-wide aggregates.

package sim

// ProcessMetrics holds the derived timings of a finished process, in ticks.
type ProcessMetrics struct {
	Name       string
	Wait       int // Turnaround - Burst
	Turnaround int // FinishTime - Arrival
	Response   int // StartTime - Arrival
}

// ComputeProcessMetrics derives the metrics of a finished process.
// Returns false for unfinished processes, whose metrics are undefined.
func ComputeProcessMetrics(p *Process) (ProcessMetrics, bool) {
	if !p.Finished() || !p.Started() {
		return ProcessMetrics{}, false
	}
	turnaround := *p.FinishTime - p.Arrival
	return ProcessMetrics{
		Name:       p.Name,
		Wait:       turnaround - p.Burst,
		Turnaround: turnaround,
		Response:   *p.StartTime - p.Arrival,
	}, true
}

// Metrics aggregates the timing statistics of a run for final reporting.
type Metrics struct {
	Finished   []ProcessMetrics // sorted by name
	Unfinished []string         // names of processes that did not finish, sorted
	Horizon    int              // ticks simulated
	IdleTicks  int              // ticks with no running process
}

// NewMetrics computes metrics from a simulation result.
func NewMetrics(res *Result) *Metrics {
	m := &Metrics{
		Horizon:    res.Config.RunFor,
		Finished:   make([]ProcessMetrics, 0, len(res.Finished)),
		Unfinished: make([]string, 0, len(res.Unfinished)),
	}
	for _, p := range res.Finished {
		if pm, ok := ComputeProcessMetrics(p); ok {
			m.Finished = append(m.Finished, pm)
		}
	}
	for _, p := range res.Unfinished {
		m.Unfinished = append(m.Unfinished, p.Name)
	}
	for _, e := range res.Events {
		if e.Kind == EventIdle {
			m.IdleTicks++
		}
	}
	return m
}

// BusyTicks returns the number of ticks the CPU executed a process.
func (m *Metrics) BusyTicks() int {
	return m.Horizon - m.IdleTicks
}

// MeanWait returns the average waiting time of finished processes (0 if none).
func (m *Metrics) MeanWait() float64 {
	return CalculateMean(m.collect(func(pm ProcessMetrics) int { return pm.Wait }))
}

// MeanTurnaround returns the average turnaround time of finished processes (0 if none).
func (m *Metrics) MeanTurnaround() float64 {
	return CalculateMean(m.collect(func(pm ProcessMetrics) int { return pm.Turnaround }))
}

// MeanResponse returns the average response time of finished processes (0 if none).
func (m *Metrics) MeanResponse() float64 {
	return CalculateMean(m.collect(func(pm ProcessMetrics) int { return pm.Response }))
}

// TurnaroundPercentile returns the p-th percentile turnaround of finished processes (0 if none).
func (m *Metrics) TurnaroundPercentile(p float64) float64 {
	return CalculatePercentile(m.collect(func(pm ProcessMetrics) int { return pm.Turnaround }), p)
}

// Throughput returns finished processes per tick over the horizon.
func (m *Metrics) Throughput() float64 {
	if m.Horizon <= 0 {
		return 0
	}
	return float64(len(m.Finished)) / float64(m.Horizon)
}

// Utilization returns the fraction of the horizon the CPU was busy.
func (m *Metrics) Utilization() float64 {
	if m.Horizon <= 0 {
		return 0
	}
	return float64(m.BusyTicks()) / float64(m.Horizon)
}

func (m *Metrics) collect(field func(ProcessMetrics) int) []int {
	out := make([]int, len(m.Finished))
	for i, pm := range m.Finished {
		out[i] = field(pm)
	}
	return out
}
