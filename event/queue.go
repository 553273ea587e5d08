package event

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// queueSize must be a power of two
const (
	queueSize = 256
	queueMask = queueSize - 1
)

// Queue is a lock-free MPSC ring buffer of raw events, usable as a
// Source for synthetic or cross-goroutine event injection.
//
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - PollEvent: Single consumer (the polling thread)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [queueSize]tcell.Event
	published [queueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event using lock-free CAS with published flags.
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(ev tcell.Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & queueMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > queueSize {
				q.head.CompareAndSwap(currentHead, nextTail-queueSize)
			}
			return
		}
	}
}

// PollEvent pops the oldest pending event in FIFO order.
// Returns false when empty or when the head slot's writer has not
// finished publishing yet.
func (q *Queue) PollEvent() (tcell.Event, bool) {
	for {
		loadedHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == loadedHead {
			return nil, false
		}

		// Skip slots lost to overflow
		readHead := loadedHead
		if currentTail-readHead > queueSize {
			readHead = currentTail - queueSize
		}

		idx := readHead & queueMask
		if !q.published[idx].Load() {
			return nil, false // Writer incomplete
		}

		ev := q.events[idx]
		if q.head.CompareAndSwap(loadedHead, readHead+1) {
			q.published[idx].Store(false)
			return ev, true
		}
	}
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail < head {
		return 0
	}
	n := tail - head
	if n > queueSize {
		n = queueSize
	}
	return int(n)
}
