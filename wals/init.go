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
	"github.com/gorse-io/gomf/factor"
	"github.com/gorse-io/gomf/train"
)

// Init ingests the training dataset: the triples are grouped twice, once
// by userId and once by itemId, producing the bipartite signal lists
// updateFactorsForOne consumes. Item factors are randomly initialised
// from [-B, +B]; user factors are left at zero, since the first
// half-epoch overwrites every row before it is ever read. Fatal if
// called more than once.
func (e *Engine) Init(data []train.Triple) {
	e.checkNotInitialized()
	e.initialized = true

	e.userSignals, e.userIndex = groupSignals(sortedByUser(data))
	e.itemSignals, e.itemIndex = groupSignals(sortedByUser(swapEntities(data)))

	nusers := e.userIndex.Size()
	nitems := e.itemIndex.Size()
	k := e.Config.Nfactors

	e.userFactors = factor.New(nusers, k, false)

	bound := e.Config.InitDistributionBound
	initRng := base.NewRandomGenerator(e.Config.Seed)
	e.itemFactors = factor.New(nitems, k, false)
	e.itemFactors.SetFactors(func(r, c int) float64 { return initRng.Float64()*2*bound - bound })
}

// InitTest ingests the test dataset, restricted to interactions whose
// user and item both appear in the training indexes, and, if averaged
// test metrics were registered on Metrics before this call, prepares
// test-user sampling. Fatal if Init has not run, or if InitTest has
// already run.
func (e *Engine) InitTest(testData []train.Triple) {
	e.checkTestNotInitialized()
	e.testInitialized = true

	if e.Metrics != nil && len(e.Metrics.TestAvgMetrics) > 0 {
		nitems := e.itemIndex.Size()
		e.testUsers = train.PrepareTestUsers(testData, e.userIndex, e.itemIndex, nitems, e.Metrics.Config.NumTestUsers, e.Metrics.Config.Seed)
		e.hasTestUsers = true
	}
}
