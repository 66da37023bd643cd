// Package report renders simulation results: the plain-text event report,
// a summary table and a YAML summary document.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/schedsim/schedsim/sim"
)

// WriteText renders the event report for res:
//
//	  3 processes
//	Using Round-Robin
//	Quantum   2
//
//	Time   0 : A arrived
//	...
//	Finished at time  20
//
//	A wait   3 turnaround   8 response   0
//	C did not finish
func WriteText(w io.Writer, res *sim.Result) error {
	bw := bufio.NewWriter(w)
	cfg := res.Config

	fmt.Fprintf(bw, "%3d processes\n", cfg.ProcessCount)
	fmt.Fprintf(bw, "Using %s\n", sim.AlgorithmDisplayName(cfg.Algorithm))
	if cfg.Algorithm == sim.AlgorithmRR {
		fmt.Fprintf(bw, "Quantum %3d\n\n", cfg.Quantum)
	}

	for _, e := range res.Events {
		fmt.Fprintln(bw, EventLine(e))
	}
	fmt.Fprintf(bw, "Finished at time %3d\n\n", cfg.RunFor)

	for _, p := range res.Finished {
		pm, ok := sim.ComputeProcessMetrics(p)
		if !ok {
			continue
		}
		fmt.Fprintf(bw, "%s wait %3d turnaround %3d response %3d\n",
			pm.Name, pm.Wait, pm.Turnaround, pm.Response)
	}
	for _, p := range res.Unfinished {
		fmt.Fprintf(bw, "%s did not finish\n", p.Name)
	}
	return bw.Flush()
}

// EventLine formats a single event as a report line.
func EventLine(e sim.Event) string {
	switch e.Kind {
	case sim.EventArrived:
		return fmt.Sprintf("Time %3d : %s arrived", e.Tick, e.Subject)
	case sim.EventSelected:
		return fmt.Sprintf("Time %3d : %s selected (burst %3d)", e.Tick, e.Subject, e.Remaining)
	case sim.EventFinished:
		return fmt.Sprintf("Time %3d : %s finished", e.Tick, e.Subject)
	case sim.EventIdle:
		return fmt.Sprintf("Time %3d : Idle", e.Tick)
	default:
		panic(fmt.Sprintf("EventLine: unknown event kind %d", int(e.Kind)))
	}
}
