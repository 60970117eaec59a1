package directline

import "sync"

// feed delivers pushed values to out in push order. push never blocks: values
// wait in an unbounded queue until the consumer reads them. The pump exits
// when done is closed; out is never closed.
type feed[T any] struct {
	mu    sync.Mutex
	queue []T

	wake chan struct{}
	out  chan T
	done <-chan struct{}
}

func newFeed[T any](done <-chan struct{}) *feed[T] {
	f := &feed[T]{
		wake: make(chan struct{}, 1),
		out:  make(chan T),
		done: done,
	}
	go f.pump()

	return f
}

func (f *feed[T]) push(v T) {
	f.mu.Lock()
	f.queue = append(f.queue, v)
	f.mu.Unlock()

	select {
	case f.wake <- struct{}{}:
	default:
	}
}

func (f *feed[T]) pump() {
	for {
		f.mu.Lock()
		if len(f.queue) == 0 {
			f.mu.Unlock()
			select {
			case <-f.wake:
				continue
			case <-f.done:
				return
			}
		}
		v := f.queue[0]
		var zero T
		f.queue[0] = zero
		f.queue = f.queue[1:]
		f.mu.Unlock()

		select {
		case f.out <- v:
		case <-f.done:
			return
		}
	}
}
