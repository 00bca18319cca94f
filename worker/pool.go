/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package worker provides the bounded pool the task operations use to keep
// blocking service calls off the caller's goroutine.
package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned by Submit after Close.
var ErrPoolClosed = errors.New("worker pool is closed")

// Options configures a Pool.
type Options struct {
	// Workers is the number of goroutines executing jobs.
	Workers int
	// QueueDepth is the capacity of the pending-job queue. Submit blocks
	// once the queue is full.
	QueueDepth int
}

// Option configures a Pool at construction time.
type Option func(*Options)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithQueueDepth sets the pending-job queue capacity.
func WithQueueDepth(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.QueueDepth = n
		}
	}
}

// DefaultOptions returns the default pool configuration.
func DefaultOptions() Options {
	return Options{
		Workers:    8,
		QueueDepth: 64,
	}
}

// Pool runs submitted jobs on a fixed set of goroutines.
type Pool struct {
	jobs chan func()
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewPool creates and starts a pool.
func NewPool(opts ...Option) *Pool {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	p := &Pool{
		jobs: make(chan func(), options.QueueDepth),
		done: make(chan struct{}),
	}
	for i := 0; i < options.Workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case job := <-p.jobs:
			job()
		}
	}
}

// Submit enqueues a job. It blocks while the queue is full and returns the
// context error if ctx ends first.
func (p *Pool) Submit(ctx context.Context, job func()) error {
	select {
	case <-p.done:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- job:
		return nil
	}
}

// Close stops the workers. Jobs already picked up run to completion;
// queued jobs are discarded.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

// Run submits fn and suspends the caller until it completes or ctx ends.
// When ctx ends first the in-flight call keeps running on its worker, but
// the caller is released; there is no preemption of the underlying network
// call beyond what its own context carries.
func Run[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}
	var zero T

	ch := make(chan result, 1)
	if err := p.Submit(ctx, func() {
		v, err := fn()
		ch <- result{val: v, err: err}
	}); err != nil {
		return zero, err
	}

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		return r.val, r.err
	}
}
