// Implements the ReadyQueue, which holds processes that have arrived and are waiting for the CPU.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of processes waiting to be dispatched.
// FCFS and Round Robin use it as a strict queue; SJF uses it as an
// insertion-ordered set and removes from arbitrary positions.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(p.Name)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// Snapshot returns a copy of the queue contents in queue order.
func (rq *ReadyQueue) Snapshot() []*Process {
	out := make([]*Process, len(rq.queue))
	copy(out, rq.queue)
	return out
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return p
}

// RemoveAt removes and returns the process at index i, preserving the order of the rest.
func (rq *ReadyQueue) RemoveAt(i int) *Process {
	if i < 0 || i >= len(rq.queue) {
		panic(fmt.Sprintf("RemoveAt: index %d out of range [0, %d)", i, len(rq.queue)))
	}
	p := rq.queue[i]
	rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
	return p
}
