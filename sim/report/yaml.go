package report

import (
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// Summary is the machine-readable run summary.
type Summary struct {
	RunID      string           `yaml:"run_id,omitempty"`
	Algorithm  string           `yaml:"algorithm"`
	Quantum    int              `yaml:"quantum,omitempty"`
	Horizon    int              `yaml:"horizon"`
	Processes  []ProcessSummary `yaml:"processes"`
	Unfinished []string         `yaml:"unfinished,omitempty"`
	Aggregate  AggregateSummary `yaml:"aggregate"`
	Trace      *TraceSection    `yaml:"trace,omitempty"`
}

// ProcessSummary holds the metrics of one finished process.
type ProcessSummary struct {
	Name       string `yaml:"name"`
	Wait       int    `yaml:"wait"`
	Turnaround int    `yaml:"turnaround"`
	Response   int    `yaml:"response"`
}

// AggregateSummary holds run-wide statistics.
type AggregateSummary struct {
	Finished       int     `yaml:"finished"`
	IdleTicks      int     `yaml:"idle_ticks"`
	MeanWait       float64 `yaml:"mean_wait"`
	MeanTurnaround float64 `yaml:"mean_turnaround"`
	MeanResponse   float64 `yaml:"mean_response"`
	TurnaroundP90  float64 `yaml:"turnaround_p90"`
	Throughput     float64 `yaml:"throughput"`
	CPUUtilization float64 `yaml:"cpu_utilization"`
}

// TraceSection is the YAML form of a trace summary.
type TraceSection struct {
	Dispatches        int            `yaml:"dispatches"`
	Preemptions       int            `yaml:"preemptions"`
	ContextSwitches   int            `yaml:"context_switches"`
	UniqueProcesses   int            `yaml:"unique_processes"`
	PerProcess        map[string]int `yaml:"per_process"`
	PreemptionReasons map[string]int `yaml:"preemption_reasons,omitempty"`
}

// NewSummary builds the summary of res. ts may be nil.
func NewSummary(runID string, res *sim.Result, ts *trace.TraceSummary) *Summary {
	m := sim.NewMetrics(res)
	s := &Summary{
		RunID:      runID,
		Algorithm:  res.Config.Algorithm,
		Quantum:    res.Config.Quantum,
		Horizon:    m.Horizon,
		Processes:  make([]ProcessSummary, 0, len(m.Finished)),
		Unfinished: m.Unfinished,
		Aggregate: AggregateSummary{
			Finished:       len(m.Finished),
			IdleTicks:      m.IdleTicks,
			MeanWait:       m.MeanWait(),
			MeanTurnaround: m.MeanTurnaround(),
			MeanResponse:   m.MeanResponse(),
			TurnaroundP90:  m.TurnaroundPercentile(90),
			Throughput:     m.Throughput(),
			CPUUtilization: m.Utilization(),
		},
	}
	for _, pm := range m.Finished {
		s.Processes = append(s.Processes, ProcessSummary(pm))
	}
	if ts != nil {
		s.Trace = &TraceSection{
			Dispatches:        ts.TotalDispatches,
			Preemptions:       ts.Preemptions,
			ContextSwitches:   ts.ContextSwitches,
			UniqueProcesses:   ts.UniqueProcesses,
			PerProcess:        ts.DispatchDistribution,
			PreemptionReasons: ts.PreemptionReasons,
		}
	}
	return s
}

// WriteYAML encodes s as a YAML document.
func WriteYAML(w io.Writer, s *Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
