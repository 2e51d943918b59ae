// Package mainloop provides a host event queue for callbacks that must run
// on the frame loop rather than on the goroutine that produced them.
package mainloop

import "sync"

// Queue is a FIFO of callbacks posted from any goroutine and run by the
// host loop when it calls Drain.
type Queue struct {
	mu        sync.Mutex
	pending   []func()
	destroyed bool
	notify    func()
}

// NewQueue creates a queue. notify, if set, is called after every Post so
// an idle host can wake up; it must not block.
func NewQueue(notify func()) *Queue {
	return &Queue{notify: notify}
}

// Post schedules fn for the next Drain. Safe for concurrent use.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}

	q.mu.Lock()
	if q.destroyed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, fn)
	notify := q.notify
	q.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Drain runs the callbacks queued before the call and returns how many ran.
// Callbacks posted while draining run on the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Destroy drops queued work and ignores later posts.
func (q *Queue) Destroy() {
	q.mu.Lock()
	q.destroyed = true
	q.pending = nil
	q.mu.Unlock()
}
