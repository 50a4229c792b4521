package usecase

import "sync"

// fetchLatch collapses concurrent fetches for the same key into one upstream
// call. Callers that arrive while a fetch is in flight block until it
// finishes and share its outcome.
type fetchLatch[K comparable] struct {
	mu       sync.Mutex
	inflight map[K]*latchCall
}

type latchCall struct {
	done    chan struct{}
	payload []byte
	err     error
}

func newFetchLatch[K comparable]() *fetchLatch[K] {
	return &fetchLatch[K]{inflight: make(map[K]*latchCall)}
}

// Do runs fn for key unless a call for the same key is already in flight, in
// which case it waits for that call and returns its result.
func (l *fetchLatch[K]) Do(key K, fn func() ([]byte, error)) ([]byte, error) {
	l.mu.Lock()
	if call, ok := l.inflight[key]; ok {
		l.mu.Unlock()
		<-call.done
		return call.payload, call.err
	}

	call := &latchCall{done: make(chan struct{})}
	l.inflight[key] = call
	l.mu.Unlock()

	call.payload, call.err = fn()

	l.mu.Lock()
	delete(l.inflight, key)
	l.mu.Unlock()
	close(call.done)

	return call.payload, call.err
}
