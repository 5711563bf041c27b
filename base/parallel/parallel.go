// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parallel provides a fixed-size worker pool and a higher-level
// executor for the stride- and block-partitioned fan-out patterns used by
// the training engines and the metrics scaffolding.
package parallel

import (
	"sync"

	"github.com/gorse-io/gomf/base/fatal"
)

// Future resolves to the return value of a task submitted to a ThreadPool.
type Future[T any] struct {
	c chan T
}

// Get blocks until the task completes and returns its result.
func (f Future[T]) Get() T {
	return <-f.c
}

// ThreadPool is a fixed pool of worker goroutines draining a shared FIFO
// queue of zero-argument tasks. Workers block on a condition variable
// while the queue is empty, rather than polling or spinning up a new
// goroutine per task.
type ThreadPool struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []func()
	poisoned bool
	wg       sync.WaitGroup
}

// NewThreadPool starts a pool of n worker goroutines. n must be positive.
func NewThreadPool(n int) *ThreadPool {
	if n <= 0 {
		fatal.Check("NewThreadPool: n must be positive, got %d", n)
	}
	p := &ThreadPool{}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *ThreadPool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.poisoned {
			p.cond.Wait()
		}
		if len(p.queue) == 0 && p.poisoned {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()
		task()
	}
}

// AddTask enqueues fn and returns a Future resolving to its result once a
// worker has run it.
func AddTask[T any](p *ThreadPool, fn func() T) Future[T] {
	future := Future[T]{c: make(chan T, 1)}
	p.mu.Lock()
	p.queue = append(p.queue, func() {
		future.c <- fn()
	})
	p.mu.Unlock()
	p.cond.Signal()
	return future
}

// Submit enqueues fn, a task with no meaningful return value, and returns a
// Future that resolves once it has run.
func (p *ThreadPool) Submit(fn func()) Future[struct{}] {
	return AddTask(p, func() struct{} {
		fn()
		return struct{}{}
	})
}

// Close poisons the pool and blocks until every already-enqueued task has
// drained and every worker has exited. The pool must not be used
// afterwards.
func (p *ThreadPool) Close() {
	p.mu.Lock()
	p.poisoned = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}
