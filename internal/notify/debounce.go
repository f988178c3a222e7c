package notify

import (
	"sync"
	"time"
)

// Debounce coalesces bursts of events for the same path: an event is held
// for the latency window and replaced if another one for that path arrives
// first. Pending events are flushed when the input channel closes, and the
// output channel only closes once every fired timer has delivered.
func Debounce(inCh <-chan Event, latency time.Duration) <-chan Event {
	outCh := make(chan Event, cap(inCh))

	go func() {
		defer close(outCh)

		var (
			mu     sync.Mutex
			wg     sync.WaitGroup
			timers = make(map[string]*time.Timer)
			events = make(map[string]Event)
		)

		for event := range inCh {
			mu.Lock()
			path := event.Path

			// A stopped timer never runs its callback, so its
			// WaitGroup slot is released here.
			if t, ok := timers[path]; ok && t.Stop() {
				wg.Done()
			}
			events[path] = event

			wg.Add(1)
			timers[path] = time.AfterFunc(latency, func() {
				defer wg.Done()

				mu.Lock()
				e, ok := events[path]
				delete(timers, path)
				delete(events, path)
				mu.Unlock()

				if ok {
					outCh <- e
				}
			})
			mu.Unlock()
		}

		// Flush whatever is still pending. Timers that fired already
		// keep ownership of their event; the Wait below holds the
		// close back until their sends land.
		mu.Lock()
		for path, t := range timers {
			if t.Stop() {
				wg.Done()
				outCh <- events[path]
				delete(events, path)
				delete(timers, path)
			}
		}
		mu.Unlock()

		wg.Wait()
	}()

	return outCh
}
