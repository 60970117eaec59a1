package tui

import "sync"

// opQueue runs pushed operations one at a time, in push order, on its own
// goroutine. push never blocks. After stop, pending and new operations are
// dropped.
type opQueue struct {
	mu  sync.Mutex
	ops []func()

	wake     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newOpQueue() *opQueue {
	q := &opQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.run()

	return q
}

func (q *opQueue) push(op func()) {
	q.mu.Lock()
	q.ops = append(q.ops, op)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *opQueue) stop() {
	q.stopOnce.Do(func() { close(q.done) })
}

func (q *opQueue) run() {
	for {
		select {
		case <-q.done:
			return
		default:
		}

		q.mu.Lock()
		if len(q.ops) == 0 {
			q.mu.Unlock()
			select {
			case <-q.wake:
				continue
			case <-q.done:
				return
			}
		}
		op := q.ops[0]
		q.ops[0] = nil
		q.ops = q.ops[1:]
		q.mu.Unlock()

		op()
	}
}
