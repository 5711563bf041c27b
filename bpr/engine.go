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

package bpr

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/base/fatal"
	"github.com/gorse-io/gomf/base/parallel"
	"github.com/gorse-io/gomf/factor"
	"github.com/gorse-io/gomf/metric"
	"github.com/gorse-io/gomf/train"
)

// posPair is one (user, positive item) training example.
type posPair struct {
	userIdx int
	itemIdx int
}

// triplet is one frozen evaluation example.
type triplet struct {
	userIdx int
	posIdx  int
	negIdx  int
}

// Engine is the BPR trainer. Each of Init/InitTest/Optimize may run at
// most once over the engine's lifetime; calling one twice is a
// programmer error.
type Engine struct {
	Config Config
	// Metrics, if set before InitTest, enables averaged test-metric
	// computation alongside training.
	Metrics *metric.Engine

	userIndex *base.IdIndex
	itemIndex *base.IdIndex

	data     []posPair
	itemMap  []mapset.Set[int] // positives per user, training
	evalSet  []triplet

	testItemMap  []mapset.Set[int]
	testEvalSet  []triplet
	testUsers    train.TestUsers
	hasTestUsers bool

	userFactors *factor.Data
	itemFactors *factor.Data

	learningRate float64
	shuffleRng   base.RandomGenerator

	executor *parallel.ParallelExecutor

	initialized     bool
	testInitialized bool
	optimized       bool
}

// NewEngine creates a BPR trainer with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		Config:       cfg,
		learningRate: cfg.InitLearningRate,
		shuffleRng:   base.NewRandomGenerator(int64(cfg.EvalSeed) + 1),
		executor:     parallel.NewParallelExecutor(cfg.Nthreads),
	}
}

// Close releases the engine's parallel executor.
func (e *Engine) Close() {
	e.executor.Close()
}

// NumUsers returns the number of distinct training users.
func (e *Engine) NumUsers() int { return e.userIndex.Size() }

// NumItems returns the number of distinct training items.
func (e *Engine) NumItems() int { return e.itemIndex.Size() }

// UserIndex exposes the training user IdIndex, e.g. for factor output.
func (e *Engine) UserIndex() *base.IdIndex { return e.userIndex }

// ItemIndex exposes the training item IdIndex, e.g. for factor output.
func (e *Engine) ItemIndex() *base.IdIndex { return e.itemIndex }

// UserFactors exposes the learned user factor data.
func (e *Engine) UserFactors() *factor.Data { return e.userFactors }

// ItemFactors exposes the learned item factor data.
func (e *Engine) ItemFactors() *factor.Data { return e.itemFactors }

// Score computes s(u,i) = bias_i + <p_u, q_i> (bias term omitted iff
// UseBiases is false), for dense indices u, i.
func (e *Engine) Score(u, i int) float64 {
	return dotPlusBias(e.userFactors.Row(u), e.itemFactors, i)
}

func dotPlusBias(p []float64, itemFactors *factor.Data, i int) float64 {
	q := itemFactors.Row(i)
	var s float64
	for f := range p {
		s += p[f] * q[f]
	}
	if itemFactors.WithBiases() {
		s += itemFactors.Bias(i)
	}
	return s
}

func (e *Engine) checkNotInitialized() {
	if e.initialized {
		fatal.Check("bpr: Init called more than once")
	}
}

func (e *Engine) checkTestNotInitialized() {
	if !e.initialized {
		fatal.Check("bpr: InitTest called before Init")
	}
	if e.testInitialized {
		fatal.Check("bpr: InitTest called more than once")
	}
}

func (e *Engine) checkNotOptimized() {
	if !e.initialized {
		fatal.Check("bpr: Optimize called before Init")
	}
	if e.optimized {
		fatal.Check("bpr: Optimize called more than once")
	}
}
