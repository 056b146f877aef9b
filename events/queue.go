package events

import (
	"sync/atomic"

	"github.com/lixenwraith/singularity/constants"
)

// EventQueue is a fixed ring of game events. Producers claim a slot with a CAS on the write
// index and publish it with a per-slot flag; the game loop is the only consumer.
// When the ring is full the oldest unread events are overwritten
type EventQueue struct {
	slots [constants.EventQueueSize]GameEvent
	ready [constants.EventQueueSize]atomic.Bool
	read  atomic.Uint64
	write atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends event, safe from any goroutine
func (q *EventQueue) Push(event GameEvent) {
	var seq uint64
	for {
		seq = q.write.Load()
		if q.write.CompareAndSwap(seq, seq+1) {
			break
		}
	}

	slot := seq & constants.EventBufferMask
	q.slots[slot] = event
	q.ready[slot].Store(true) // after the write

	// Drag the reader forward past overwritten slots
	if r := q.read.Load(); seq+1-r > constants.EventQueueSize {
		q.read.CompareAndSwap(r, seq+1-constants.EventQueueSize)
	}
}

// Consume drains published events in FIFO order. Stops early at a slot whose writer has not
// finished; that event is picked up by the next call
func (q *EventQueue) Consume() []GameEvent {
	for {
		r := q.read.Load()
		to := q.write.Load()
		if to == r {
			return nil
		}
		from := r
		if to-from > constants.EventQueueSize {
			from = to - constants.EventQueueSize
		}

		var out []GameEvent
		for seq := from; seq < to; seq++ {
			slot := seq & constants.EventBufferMask
			if !q.ready[slot].Load() {
				break
			}
			out = append(out, q.slots[slot])
			q.ready[slot].Store(false)
		}

		if q.read.CompareAndSwap(r, from+uint64(len(out))) {
			return out
		}
	}
}

// Len returns the number of unread events
func (q *EventQueue) Len() int {
	return int(min(q.write.Load()-q.read.Load(), constants.EventQueueSize))
}
