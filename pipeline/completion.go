package pipeline

import "github.com/apex-sim/apexsim/insts"

// CompletionQueue is the bounded FIFO of function-unit class tags that
// arbitrates writeback among the three function units: whichever FU's tag
// sits at the head may hand its result to writeback this cycle, which is
// what keeps out-of-order FU completion from retiring instructions out of
// program order.
type CompletionQueue struct {
	tags     []insts.FUClass
	capacity int
}

// NewCompletionQueue builds an empty queue with the given capacity.
func NewCompletionQueue(capacity int) *CompletionQueue {
	return &CompletionQueue{capacity: capacity}
}

// Len returns the number of in-flight tags.
func (q *CompletionQueue) Len() int {
	return len(q.tags)
}

// Enqueue appends tag to the back of the queue.
func (q *CompletionQueue) Enqueue(tag insts.FUClass) {
	if len(q.tags) >= q.capacity {
		panic("pipeline: completion queue overflow")
	}
	q.tags = append(q.tags, tag)
}

// Head returns the tag at the front of the queue, or the zero FUClass if
// the queue is empty.
func (q *CompletionQueue) Head() insts.FUClass {
	if len(q.tags) == 0 {
		return 0
	}
	return q.tags[0]
}

// Dequeue removes the head tag, if any.
func (q *CompletionQueue) Dequeue() {
	if len(q.tags) == 0 {
		return
	}
	q.tags = q.tags[1:]
}
