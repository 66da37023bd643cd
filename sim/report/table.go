package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// WriteTable renders a per-process summary table with run-wide averages in the footer.
// When ts is non-nil a second table with dispatch counts is appended.
func WriteTable(w io.Writer, res *sim.Result, ts *trace.TraceSummary) error {
	m := sim.NewMetrics(res)

	bursts := make(map[string]int, len(res.Finished)+len(res.Unfinished))
	for _, p := range res.Finished {
		bursts[p.Name] = p.Burst
	}
	for _, p := range res.Unfinished {
		bursts[p.Name] = p.Burst
	}

	rows := make([][]string, 0, len(m.Finished)+len(m.Unfinished))
	for _, pm := range m.Finished {
		rows = append(rows, []string{
			pm.Name,
			strconv.Itoa(bursts[pm.Name]),
			strconv.Itoa(pm.Wait),
			strconv.Itoa(pm.Turnaround),
			strconv.Itoa(pm.Response),
		})
	}
	for _, name := range m.Unfinished {
		rows = append(rows, []string{name, strconv.Itoa(bursts[name]), "-", "-", "-"})
	}

	if _, err := fmt.Fprintf(w, "%s, %d ticks\n", sim.AlgorithmDisplayName(res.Config.Algorithm), m.Horizon); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Burst", "Wait", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{
		fmt.Sprintf("Util %.2f", m.Utilization()),
		fmt.Sprintf("Thru %.3f", m.Throughput()),
		fmt.Sprintf("%.2f", m.MeanWait()),
		fmt.Sprintf("%.2f", m.MeanTurnaround()),
		fmt.Sprintf("%.2f", m.MeanResponse()),
	})
	table.Render()

	if ts == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nDispatches %d, preemptions %d, context switches %d\n",
		ts.TotalDispatches, ts.Preemptions, ts.ContextSwitches); err != nil {
		return err
	}
	dt := tablewriter.NewWriter(w)
	dt.SetHeader([]string{"Process", "Dispatches"})
	for _, name := range sortedKeys(ts.DispatchDistribution) {
		dt.Append([]string{name, strconv.Itoa(ts.DispatchDistribution[name])})
	}
	dt.Render()
	return nil
}
