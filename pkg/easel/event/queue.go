package event

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Wait when the queue is closed while blocked.
var ErrClosed = errors.New("event: queue closed")

// Queue is the FIFO of raw input records sitting between the display
// backend and the application's poll loop. The backend pushes records from
// its own goroutine; the application polls from its single control flow.
// Filtering happens here, at the queue boundary: records outside the
// requested filter are left queued without being decoded.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	records []Raw
	closed  bool
}

func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends a record and wakes any blocked Wait. Records pushed after
// Close are dropped.
func (q *Queue) Push(r Raw) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.records = append(q.records, r)
	q.cond.Broadcast()
}

// Poll returns the first queued message matching the filter without
// blocking. With consume false the record stays queued and a repeated call
// returns it again; with consume true it is removed. The second result is
// false when no matching record is pending.
//
// A record whose identifier is outside the known kind set is surfaced as
// an error regardless of the filter. The offending record is discarded so
// the failure is observed exactly once.
func (q *Queue) Poll(f Filter, consume bool) (Message, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pollLocked(f, consume)
}

func (q *Queue) pollLocked(f Filter, consume bool) (Message, bool, error) {
	for i := 0; i < len(q.records); i++ {
		r := q.records[i]
		k := Kind(r.Msg)
		if k.Category() == 0 {
			q.removeLocked(i)
			_, err := Classify(r)
			return Message{}, false, err
		}
		if !f.Matches(k) {
			continue
		}
		m, err := Classify(r)
		if err != nil {
			q.removeLocked(i)
			return Message{}, false, err
		}
		if consume {
			q.removeLocked(i)
		}
		return m, true, nil
	}
	return Message{}, false, nil
}

// Wait blocks until a record matching the filter is available, then
// consumes and returns it. It returns ErrClosed if the queue is closed
// before a matching record arrives. Only Push and Close unblock it.
func (q *Queue) Wait(f Filter) (Message, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		m, ok, err := q.pollLocked(f, true)
		if err != nil {
			return Message{}, err
		}
		if ok {
			return m, nil
		}
		if q.closed {
			return Message{}, ErrClosed
		}
		q.cond.Wait()
	}
}

// Flush discards every queued record matching the filter, including
// records with unrecognized identifiers.
func (q *Queue) Flush(f Filter) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.records[:0]
	for _, r := range q.records {
		k := Kind(r.Msg)
		if k.Category() == 0 || f.Matches(k) {
			continue
		}
		kept = append(kept, r)
	}
	q.records = kept
}

// Len reports the number of queued records.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// Close marks the queue closed and wakes every blocked Wait. Pending
// records remain pollable; further pushes are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

func (q *Queue) removeLocked(i int) {
	q.records = append(q.records[:i], q.records[i+1:]...)
}
