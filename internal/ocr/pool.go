package ocr

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned when acquiring from a closed pool.
var ErrPoolClosed = errors.New("ocr: pool closed")

// Pool owns a fixed set of engines with an explicit lifecycle: engines are
// created once at construction, handed out with Acquire, returned with
// Release, and discarded at Close. Recognition backends keep per-instance
// state (loaded language models), so instances are reused, never rebuilt
// per call.
type Pool struct {
	engines chan Engine

	mu     sync.Mutex
	closed bool
}

// NewPool creates size engines using factory. Size is clamped to at
// least one.
func NewPool(size int, factory func() Engine) *Pool {
	if size <= 0 {
		size = 1
	}
	p := &Pool{engines: make(chan Engine, size)}
	for i := 0; i < size; i++ {
		p.engines <- factory()
	}
	return p
}

// Acquire takes an engine from the pool, blocking until one is free or ctx
// is done.
func (p *Pool) Acquire(ctx context.Context) (Engine, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case e, ok := <-p.engines:
		if !ok {
			return nil, ErrPoolClosed
		}
		return e, nil
	}
}

// Release returns an engine to the pool. Releasing into a closed pool
// discards the engine.
func (p *Pool) Release(e Engine) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.engines <- e
}

// Close shuts the pool down; subsequent Acquire calls fail with
// ErrPoolClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.engines)
}
