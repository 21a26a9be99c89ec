package bench

import "sync"

// Channel is the inter-user communication primitive handed to the workload.
// Send blocks according to the variant's buffering behavior; Receive blocks
// until a message or channel close, returning ok=false once the channel is
// closed and drained.
//
// A Channel instance belongs to exactly one benchmark run. Reusing one
// across runs would carry stale buffered messages into the next measurement.
type Channel[T any] interface {
	Send(v T)
	Receive() (T, bool)
	Close()
}

// NewChannel builds a fresh channel with the variant's buffering capacity.
// Call it once per run; the returned handle must not be shared between runs
// or configurations. An out-of-set kind fails with a *ParseError.
func NewChannel[T any](kind ChannelKind) (Channel[T], error) {
	capacity, err := kind.Capacity()
	if err != nil {
		return nil, err
	}
	if capacity == UnlimitedCapacity {
		return newUnboundedChannel[T](), nil
	}
	return &goChannel[T]{ch: make(chan T, capacity)}, nil
}

// goChannel wraps a native channel for the rendezvous and fixed-capacity
// variants.
type goChannel[T any] struct {
	ch chan T
}

func (c *goChannel[T]) Send(v T) {
	c.ch <- v
}

func (c *goChannel[T]) Receive() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

func (c *goChannel[T]) Close() {
	close(c.ch)
}

// unboundedChannel queues pending messages without limit, so Send never
// blocks. Receive blocks on a condition variable while the queue is empty.
type unboundedChannel[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []T
	closed bool
}

func newUnboundedChannel[T any]() *unboundedChannel[T] {
	c := &unboundedChannel[T]{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

func (c *unboundedChannel[T]) Send(v T) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		panic("bench: send on closed channel")
	}
	c.queue = append(c.queue, v)
	c.mu.Unlock()
	c.cond.Signal()
}

func (c *unboundedChannel[T]) Receive() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.queue) == 0 && !c.closed {
		c.cond.Wait()
	}
	if len(c.queue) == 0 {
		var zero T
		return zero, false
	}
	v := c.queue[0]
	c.queue = c.queue[1:]
	return v, true
}

func (c *unboundedChannel[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cond.Broadcast()
}
