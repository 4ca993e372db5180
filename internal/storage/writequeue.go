package storage

import (
	"context"
	"log"
	"sync"
	"time"
)

const writeTimeout = 2 * time.Second

type kvBackend interface {
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

type writeOp struct {
	value  string
	delete bool
}

// WriteQueue serializes writes per storage key so that fire-and-forget
// persistence still commits in a deterministic order: the newest write
// for a key always wins. A pending write that has not reached the store
// yet is replaced outright when a newer one for the same key arrives.
// Write failures are logged and swallowed; there is no retry.
type WriteQueue struct {
	store kvBackend

	mu      sync.Mutex
	workers map[string]chan writeOp
	latest  map[string]writeOp
	closed  bool
	wg      sync.WaitGroup
}

func NewWriteQueue(store kvBackend) *WriteQueue {
	return &WriteQueue{
		store:   store,
		workers: make(map[string]chan writeOp),
		latest:  make(map[string]writeOp),
	}
}

// Enqueue schedules a write of value under key and returns immediately.
func (q *WriteQueue) Enqueue(key, value string) {
	q.submit(key, writeOp{value: value})
}

// EnqueueDelete schedules removal of each key.
func (q *WriteQueue) EnqueueDelete(keys ...string) {
	for _, key := range keys {
		q.submit(key, writeOp{delete: true})
	}
}

// Latest reports the newest enqueued op for a key, whether or not it
// has reached the store yet. Callers use it to read their own writes
// ahead of the async commit.
func (q *WriteQueue) Latest(key string) (value string, deleted bool, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	op, ok := q.latest[key]
	return op.value, op.delete, ok
}

func (q *WriteQueue) submit(key string, op writeOp) {
	ch := q.worker(key)
	if ch == nil {
		return
	}
	q.mu.Lock()
	q.latest[key] = op
	q.mu.Unlock()
	for {
		select {
		case ch <- op:
			return
		default:
			// Slot taken: drop the stale pending op and offer again.
			select {
			case <-ch:
			default:
			}
		}
	}
}

func (q *WriteQueue) worker(key string) chan writeOp {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil
	}
	if ch, ok := q.workers[key]; ok {
		return ch
	}
	ch := make(chan writeOp, 1)
	q.workers[key] = ch
	q.wg.Add(1)
	go q.run(key, ch)
	return ch
}

func (q *WriteQueue) run(key string, ch chan writeOp) {
	defer q.wg.Done()
	for op := range ch {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		var err error
		if op.delete {
			err = q.store.Del(ctx, key)
		} else {
			err = q.store.Set(ctx, key, op.value)
		}
		cancel()
		if err != nil {
			log.Printf("[storage] write for key %q failed: %v", key, err)
		}
	}
}

// Close stops accepting writes, flushes whatever is still queued and
// waits for the workers to finish.
func (q *WriteQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for _, ch := range q.workers {
		close(ch)
	}
	q.mu.Unlock()
	q.wg.Wait()
}
