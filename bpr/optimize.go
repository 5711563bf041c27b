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
	"go.uber.org/zap"

	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/base/log"
	"github.com/gorse-io/gomf/train"
)

// Optimize runs Config.Nepochs epochs of pairwise SGD. Fatal if Init has
// not run, or if Optimize has already run.
func (e *Engine) Optimize() {
	e.checkNotOptimized()
	e.optimized = true

	for epoch := 1; epoch <= e.Config.Nepochs; epoch++ {
		if e.Config.NumHogwildThreads > 1 {
			e.trainEpochHogwild()
		} else {
			e.trainEpochSequential()
		}

		e.evaluate(epoch)

		if e.Config.DecayRate < 1 {
			e.learningRate *= e.Config.DecayRate
		}
		if e.Config.ShuffleTrainingSet {
			e.shuffleRng.Shuffle(len(e.data), func(i, j int) {
				e.data[i], e.data[j] = e.data[j], e.data[i]
			})
		}
	}
}

func (e *Engine) trainEpochSequential() {
	sampler := train.NewNegativeSampler(e.shuffleRng.Int63())
	for _, p := range e.data {
		for n := 0; n < e.Config.NumNegativeSamples; n++ {
			neg := e.sampleNegative(sampler, p.userIdx)
			e.update(p.userIdx, p.itemIdx, neg, e.learningRate)
		}
	}
}

// trainEpochHogwild partitions e.data into NumHogwildThreads contiguous
// blocks (tail beyond T*block dropped, matching ParallelExecutor's block
// partitioning quirk) and runs each block's inner loop on a separate
// goroutine against the shared, unsynchronised factor storage. No locks,
// no atomics: occasional lost updates are the accepted cost of Hogwild
// SGD.
func (e *Engine) trainEpochHogwild() {
	threads := e.Config.NumHogwildThreads
	if threads > e.executor.N() {
		log.Logger().Warn("num_hogwild_threads exceeds thread pool size",
			zap.Int("num_hogwild_threads", threads), zap.Int("pool_size", e.executor.N()))
	}

	n := len(e.data)
	block := n / threads
	sharedRng := base.NewRand(e.shuffleRng.Int63())
	sampler := train.NewNegativeSamplerFromRand(sharedRng)

	done := make(chan struct{}, threads)
	for t := 0; t < threads; t++ {
		begin := t * block
		end := begin + block
		go func(begin, end int) {
			for idx := begin; idx < end; idx++ {
				p := e.data[idx]
				for n := 0; n < e.Config.NumNegativeSamples; n++ {
					neg := e.sampleNegative(sampler, p.userIdx)
					e.update(p.userIdx, p.itemIdx, neg, e.learningRate)
				}
			}
			done <- struct{}{}
		}(begin, end)
	}
	for t := 0; t < threads; t++ {
		<-done
	}
}
