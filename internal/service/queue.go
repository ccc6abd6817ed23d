package service

import (
	"sync"

	"github.com/MKhiriev/go-locker-sync/models"
)

type workKind int

const (
	// workSnapshot carries a full cloud locker snapshot.
	workSnapshot workKind = iota + 1
	// workTick asks for a periodic pass over the current snapshot.
	workTick
)

type workItem struct {
	kind    workKind
	batchID string
	entries []models.LockerEntry
}

// workQueue is a bounded FIFO drained by a single consumer.
//
// Snapshots are full states, so when the queue is full a new snapshot replaces
// the newest queued one. Ticks coalesce: a tick is dropped if one is already
// waiting or the queue is full.
type workQueue struct {
	mu       sync.Mutex
	items    []workItem
	capacity int
	signal   chan struct{} // buffered, size 1
}

func newWorkQueue(capacity int) *workQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &workQueue{
		items:    make([]workItem, 0, capacity),
		capacity: capacity,
		signal:   make(chan struct{}, 1),
	}
}

// push enqueues item and reports whether it was kept.
func (q *workQueue) push(item workItem) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch item.kind {
	case workTick:
		if len(q.items) >= q.capacity || q.hasTickLocked() {
			return false
		}
		q.items = append(q.items, item)
	case workSnapshot:
		if len(q.items) < q.capacity {
			q.items = append(q.items, item)
			break
		}
		q.items[q.supersedeIndexLocked()] = item
	default:
		return false
	}

	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// supersedeIndexLocked returns the newest queued snapshot, or the tail.
func (q *workQueue) supersedeIndexLocked() int {
	for i := len(q.items) - 1; i >= 0; i-- {
		if q.items[i].kind == workSnapshot {
			return i
		}
	}
	return len(q.items) - 1
}

func (q *workQueue) hasTickLocked() bool {
	for _, it := range q.items {
		if it.kind == workTick {
			return true
		}
	}
	return false
}

// tryPop removes and returns the head item.
func (q *workQueue) tryPop() (workItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return workItem{}, false
	}
	it := q.items[0]
	q.items[0] = workItem{}
	q.items = q.items[1:]
	return it, true
}

// wait signals when items may be available.
func (q *workQueue) wait() <-chan struct{} {
	return q.signal
}

func (q *workQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
