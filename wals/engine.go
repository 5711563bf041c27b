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

package wals

import (
	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/base/fatal"
	"github.com/gorse-io/gomf/base/parallel"
	"github.com/gorse-io/gomf/factor"
	"github.com/gorse-io/gomf/metric"
	"github.com/gorse-io/gomf/train"
)

// Engine trains a pair of dense factor matrices against implicit
// feedback by alternating weighted least squares: each half-epoch fixes
// one side and re-solves every row of the other side's factors against
// a Hu-Koren-Volinsky confidence-weighted ridge regression.
type Engine struct {
	Config  Config
	Metrics *metric.Engine

	userIndex *base.IdIndex
	itemIndex *base.IdIndex

	userSignals []SignalGroup
	itemSignals []SignalGroup

	testUsers    train.TestUsers
	hasTestUsers bool

	userFactors *factor.Data
	itemFactors *factor.Data

	executor *parallel.ParallelExecutor

	initialized     bool
	testInitialized bool
	optimized       bool
}

// NewEngine allocates an Engine and its worker pool from cfg.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		Config:   cfg,
		executor: parallel.NewParallelExecutor(cfg.Nthreads),
	}
}

// Close releases the engine's worker pool. The Engine must not be used
// afterwards.
func (e *Engine) Close() {
	e.executor.Close()
}

// NumUsers returns the number of distinct users seen by Init.
func (e *Engine) NumUsers() int { return e.userIndex.Size() }

// NumItems returns the number of distinct items seen by Init.
func (e *Engine) NumItems() int { return e.itemIndex.Size() }

// UserIndex exposes the user id <-> dense index bijection built by Init.
func (e *Engine) UserIndex() *base.IdIndex { return e.userIndex }

// ItemIndex exposes the item id <-> dense index bijection built by Init.
func (e *Engine) ItemIndex() *base.IdIndex { return e.itemIndex }

// UserFactors exposes the trained (or training) user factor matrix.
func (e *Engine) UserFactors() *factor.Data { return e.userFactors }

// ItemFactors exposes the trained (or training) item factor matrix.
func (e *Engine) ItemFactors() *factor.Data { return e.itemFactors }

// Score returns the dot product of user u's and item i's dense-index
// factors.
func (e *Engine) Score(u, i int) float64 {
	p := e.userFactors.Row(u)
	q := e.itemFactors.Row(i)
	var dot float64
	for f := range p {
		dot += p[f] * q[f]
	}
	return dot
}

func (e *Engine) checkNotInitialized() {
	if e.initialized {
		fatal.Check("wals: Init called more than once")
	}
}

func (e *Engine) checkTestNotInitialized() {
	if !e.initialized {
		fatal.Check("wals: InitTest called before Init")
	}
	if e.testInitialized {
		fatal.Check("wals: InitTest called more than once")
	}
}

func (e *Engine) checkNotOptimized() {
	if !e.initialized {
		fatal.Check("wals: Optimize called before Init")
	}
	if e.optimized {
		fatal.Check("wals: Optimize called more than once")
	}
}
