package sim

import (
	"fmt"
	"sort"
)

// EventKind identifies what happened at a tick.
// The numeric value is the kind's ordering priority among same-tick events.
type EventKind int

const (
	EventArrived  EventKind = 1
	EventFinished EventKind = 2
	EventSelected EventKind = 3
	EventIdle     EventKind = 4
)

func (k EventKind) String() string {
	switch k {
	case EventArrived:
		return "arrived"
	case EventFinished:
		return "finished"
	case EventSelected:
		return "selected"
	case EventIdle:
		return "idle"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single tick-stamped entry in the simulation log.
type Event struct {
	Tick    int
	Kind    EventKind
	Subject string // process name; empty for Idle
	// Remaining is the subject's remaining burst when it was selected.
	// Only meaningful for EventSelected.
	Remaining int
}

func (e Event) String() string {
	switch e.Kind {
	case EventIdle:
		return fmt.Sprintf("[tick %d] idle", e.Tick)
	case EventSelected:
		return fmt.Sprintf("[tick %d] %s selected (remaining %d)", e.Tick, e.Subject, e.Remaining)
	default:
		return fmt.Sprintf("[tick %d] %s %s", e.Tick, e.Subject, e.Kind)
	}
}

// EventLog is an append-only record of simulation events.
type EventLog struct {
	events []Event
}

// Append records an event. Logged events are never modified or removed.
func (l *EventLog) Append(e Event) {
	l.events = append(l.events, e)
}

// Len returns the number of logged events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Sorted returns a copy of the log ordered by (Tick, Kind priority).
// The sort is stable, so same-tick events of the same kind keep their logging order.
func (l *EventLog) Sorted() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tick != out[j].Tick {
			return out[i].Tick < out[j].Tick
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Count returns the number of logged events of the given kind.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
