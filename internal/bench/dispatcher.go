package bench

import (
	"fmt"
	"sync"
)

// Dispatcher is the concurrency executor handed to the workload. Submit
// enqueues a task for asynchronous execution; at most the requested
// parallelism degree of tasks run at once. Shutdown stops intake, drains
// the queued tasks, and waits for the workers to exit.
//
// Like channels, a Dispatcher belongs to exactly one benchmark run: each
// run gets an independent pool, never a shared cross-run one.
type Dispatcher interface {
	Submit(task func())
	Shutdown()
}

// New builds a fresh executor sized to exactly the given parallelism
// degree. A non-positive degree is a caller error and is rejected rather
// than clamped.
func (k DispatcherKind) New(parallelism int) (Dispatcher, error) {
	if parallelism < 1 {
		return nil, fmt.Errorf("%s dispatcher with degree %d: %w", k, parallelism, ErrNonPositiveParallelism)
	}
	switch k {
	case DispatcherForkJoin:
		return newForkJoinPool(parallelism), nil
	case DispatcherExperimental:
		return newFixedPool(parallelism), nil
	default:
		return nil, &ParseError{Field: "dispatcherType", Value: string(k), Reason: "unknown dispatcher variant"}
	}
}

// forkJoinPool is a work-stealing pool. Every worker owns a deque; Submit
// distributes tasks round-robin, workers pop their own deque LIFO and steal
// the oldest task from a sibling when theirs is empty.
type forkJoinPool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	deques [][]func()
	next   int
	closed bool
	wg     sync.WaitGroup
}

func newForkJoinPool(parallelism int) *forkJoinPool {
	p := &forkJoinPool{deques: make([][]func(), parallelism)}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(parallelism)
	for i := 0; i < parallelism; i++ {
		go p.worker(i)
	}
	return p
}

func (p *forkJoinPool) Submit(task func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("bench: submit on shut down dispatcher")
	}
	i := p.next
	p.next = (p.next + 1) % len(p.deques)
	p.deques[i] = append(p.deques[i], task)
	p.mu.Unlock()
	p.cond.Signal()
}

func (p *forkJoinPool) worker(id int) {
	defer p.wg.Done()
	for {
		task := p.take(id)
		if task == nil {
			return
		}
		task()
	}
}

// take returns the next task for worker id, blocking until one is available
// or the pool is shut down with every deque drained (nil).
func (p *forkJoinPool) take(id int) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		if d := p.deques[id]; len(d) > 0 {
			task := d[len(d)-1]
			p.deques[id] = d[:len(d)-1]
			return task
		}
		for i := range p.deques {
			if i == id || len(p.deques[i]) == 0 {
				continue
			}
			task := p.deques[i][0]
			p.deques[i] = p.deques[i][1:]
			return task
		}
		if p.closed {
			return nil
		}
		p.cond.Wait()
	}
}

func (p *forkJoinPool) Shutdown() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

// fixedPool backs the EXPERIMENTAL variant: exactly parallelism workers
// draining one shared FIFO queue, with no growth or shrinking.
type fixedPool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	wg     sync.WaitGroup
}

func newFixedPool(parallelism int) *fixedPool {
	p := &fixedPool{}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(parallelism)
	for i := 0; i < parallelism; i++ {
		go p.worker()
	}
	return p
}

func (p *fixedPool) Submit(task func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("bench: submit on shut down dispatcher")
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
}

func (p *fixedPool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()
		task()
	}
}

func (p *fixedPool) Shutdown() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}
