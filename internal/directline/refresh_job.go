package directline

import (
	"context"
	"sync"
	"time"
)

// refreshFunc performs one token refresh and returns the delay until the
// next one. A non-positive delay ends the job.
type refreshFunc func(ctx context.Context) time.Duration

type refreshJob struct {
	refresh refreshFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newRefreshJob(refresh refreshFunc) *refreshJob {
	return &refreshJob{refresh: refresh}
}

// Start stops any previously running job, then launches a background
// goroutine that calls refresh after interval and afterwards after whatever
// delay refresh returns. If interval is zero or negative it defaults to
// defaultRefreshFallback. The goroutine exits when ctx is cancelled, Stop is
// called, or refresh returns a non-positive delay.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshFallback
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTimer(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				next := j.refresh(jobCtx)
				if next <= 0 {
					return
				}
				t.Reset(next)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
