package main

import (
	"sync"

	cornell "github.com/maxgiraldo/cornell-notes"
)

// converterPool manages PDF converters for parallel batch processing. Each
// converter owns its own browser instance, so converters are never shared
// across concurrent conversions. Converters are created lazily on first
// acquire to avoid browser startup delay for single-file runs.
type converterPool struct {
	size    int
	factory func() (*cornell.Converter, error)

	mu         sync.Mutex
	converters []*cornell.Converter
	sem        chan *cornell.Converter
	created    int
	closed     bool
}

// newConverterPool creates a pool with capacity for n converters built by
// factory.
func newConverterPool(n int, factory func() (*cornell.Converter, error)) *converterPool {
	if n < 1 {
		n = 1
	}
	return &converterPool{
		size:       n,
		factory:    factory,
		converters: make([]*cornell.Converter, 0, n),
		sem:        make(chan *cornell.Converter, n),
	}
}

// Acquire gets a converter from the pool, creating one if capacity allows.
// Blocks if all converters are in use.
func (p *converterPool) Acquire() (*cornell.Converter, error) {
	// Try to get an existing converter (non-blocking)
	select {
	case conv := <-p.sem:
		return conv, nil
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create the converter outside the lock
		conv, err := p.factory()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		p.converters = append(p.converters, conv)
		p.mu.Unlock()
		return conv, nil
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	return <-p.sem, nil
}

// Release returns a converter to the pool.
func (p *converterPool) Release(conv *cornell.Converter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.sem <- conv
	}
}

// Size returns the pool capacity.
func (p *converterPool) Size() int {
	return p.size
}

// Close releases all browser resources. Safe to call once, after all
// conversions have finished.
func (p *converterPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var firstErr error
	for _, conv := range p.converters {
		if err := conv.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
