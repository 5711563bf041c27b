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

package parallel

// ParallelExecutor wraps a ThreadPool of N goroutines and exposes
// stride- and block-partitioned fan-out helpers built on top of it.
type ParallelExecutor struct {
	pool *ThreadPool
	n    int
}

// NewParallelExecutor creates a ParallelExecutor backed by n worker
// goroutines.
func NewParallelExecutor(n int) *ParallelExecutor {
	return &ParallelExecutor{pool: NewThreadPool(n), n: n}
}

// N returns the number of workers in the underlying pool.
func (e *ParallelExecutor) N() int {
	return e.n
}

// Close releases the underlying pool. The executor must not be used
// afterwards.
func (e *ParallelExecutor) Close() {
	e.pool.Close()
}

// Execute spawns exactly N worker tasks; worker t processes task ids
// t, t+N, t+2N, ... (stride partitioning) out of [0, ntasks). It blocks
// until every dispatched task has completed.
func (e *ParallelExecutor) Execute(ntasks int, fn func(taskId int)) {
	futures := make([]Future[struct{}], e.n)
	for t := 0; t < e.n; t++ {
		worker := t
		futures[t] = e.pool.Submit(func() {
			for id := worker; id < ntasks; id += e.n {
				fn(id)
			}
		})
	}
	for _, f := range futures {
		f.Get()
	}
}

// MapReduce maps every task id in [0, ntasks) with mapFn and folds the
// results with reduceFn, starting from neutral. Each worker reduces its
// stride subset locally; the N partials are then folded together
// sequentially in worker-id order.
func MapReduce[T any](e *ParallelExecutor, ntasks int, neutral T, mapFn func(taskId int) T, reduceFn func(acc, x T) T) T {
	futures := make([]Future[T], e.n)
	for t := 0; t < e.n; t++ {
		worker := t
		futures[t] = AddTask(e.pool, func() T {
			acc := neutral
			for id := worker; id < ntasks; id += e.n {
				acc = reduceFn(acc, mapFn(id))
			}
			return acc
		})
	}
	acc := neutral
	for _, f := range futures {
		acc = reduceFn(acc, f.Get())
	}
	return acc
}

// MapReduceSlice maps every element of elems with mapFn and folds the
// results with reduceFn, starting from neutral, using block partitioning:
// worker t handles elems[t*B : min((t+1)*B, len(elems))] where
// B = len(elems)/N (integer division). Elements beyond N*B are dropped —
// a deliberately preserved quirk matching the Hogwild block partitioning
// used by the training engines.
func MapReduceSlice[S, T any](e *ParallelExecutor, elems []S, neutral T, mapFn func(x S) T, reduceFn func(acc, x T) T) T {
	n := len(elems)
	block := n / e.n
	futures := make([]Future[T], e.n)
	for t := 0; t < e.n; t++ {
		begin := t * block
		end := begin + block
		if end > n {
			end = n
		}
		chunk := elems[begin:end]
		futures[t] = AddTask(e.pool, func() T {
			acc := neutral
			for _, x := range chunk {
				acc = reduceFn(acc, mapFn(x))
			}
			return acc
		})
	}
	acc := neutral
	for _, f := range futures {
		acc = reduceFn(acc, f.Get())
	}
	return acc
}
