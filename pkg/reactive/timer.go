package reactive

import (
	"sync/atomic"
	"time"
)

// Timeout creates a one-shot timer that executes fn on the dispatcher's
// event loop after duration d. The returned Cleanup cancels the timer if
// called before it fires; calling it after the timer fired is a no-op.
//
// Timer callbacks always run on the loop, so fn may freely write signals.
func Timeout(disp Dispatcher, d time.Duration, fn func()) Cleanup {
	// Atomic guard prevents a fire racing a concurrent cancel.
	var fired atomic.Bool
	timer := time.AfterFunc(d, func() {
		if fired.CompareAndSwap(false, true) {
			disp.Dispatch(fn)
		}
	})

	return func() {
		fired.Store(true)
		timer.Stop()
	}
}

// Interval schedules periodic ticks that execute fn on the dispatcher's
// event loop. The first tick occurs after duration d. The returned Cleanup
// stops future ticks.
func Interval(disp Dispatcher, d time.Duration, fn func()) Cleanup {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				disp.Dispatch(fn)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
