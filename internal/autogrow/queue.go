package autogrow

// Scheduler defers work to the next tick of the UI loop.
type Scheduler interface {
	Defer(fn func())
}

// Queue is a FIFO Scheduler drained explicitly by the owner of the loop.
// Work deferred while a flush is running is kept for the following flush.
type Queue struct {
	tasks []func()
}

// Defer appends fn to the queue.
func (q *Queue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.tasks = append(q.tasks, fn)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Flush runs the tasks queued before the call in the order they were
// deferred and returns how many ran.
func (q *Queue) Flush() int {
	batch := q.tasks
	q.tasks = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
