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
	"github.com/gorse-io/gomf/factor"
	"github.com/gorse-io/gomf/train"
)

// Init ingests the training dataset: interactions with value < 1.0 are
// treated as absent. Builds the user/item IdIndexes, the positive-item
// map, a frozen evaluation set of negatives, and randomly initialises
// the factors. Fatal if called more than once.
func (e *Engine) Init(data []train.Triple) {
	e.checkNotInitialized()
	e.initialized = true

	e.userIndex = base.NewIdIndex()
	e.itemIndex = base.NewIdIndex()
	for _, t := range data {
		if t.Value < 1.0 {
			continue
		}
		u := e.userIndex.GetOrInsert(t.UserId)
		i := e.itemIndex.GetOrInsert(t.ItemId)
		e.data = append(e.data, posPair{userIdx: u, itemIdx: i})
	}

	nusers := e.userIndex.Size()
	nitems := e.itemIndex.Size()

	e.itemMap = make([]mapset.Set[int], nusers)
	for i := range e.itemMap {
		e.itemMap[i] = mapset.NewThreadUnsafeSet[int]()
	}
	for _, p := range e.data {
		e.itemMap[p.userIdx].Add(p.itemIdx)
	}

	e.evalSet = buildEvalSet(e.data, e.itemMap, nitems, e.Config.EvalNumNeg, int64(e.Config.EvalSeed))

	bound := e.Config.InitDistributionBound
	initRng := base.NewRandomGenerator(int64(e.Config.EvalSeed))
	e.userFactors = factor.New(nusers, e.Config.Nfactors, false)
	e.userFactors.SetFactors(func(r, c int) float64 { return initRng.Float64()*2*bound - bound })
	e.itemFactors = factor.New(nitems, e.Config.Nfactors, e.Config.UseBiases)
	e.itemFactors.SetFactors(func(r, c int) float64 { return initRng.Float64()*2*bound - bound })
	if e.Config.UseBiases {
		e.itemFactors.SetBiases(func(r int) float64 { return initRng.Float64()*2*bound - bound })
	}
}

// InitTest ingests the test dataset, restricted to interactions whose
// user and item both appear in the training indexes. Builds a frozen
// test evaluation set and, if averaged test metrics were registered on
// Metrics before this call, prepares test-user sampling. Fatal if Init
// has not run, or if InitTest has already run.
func (e *Engine) InitTest(testData []train.Triple) {
	e.checkTestNotInitialized()
	e.testInitialized = true

	nusers := e.userIndex.Size()
	nitems := e.itemIndex.Size()

	e.testItemMap = make([]mapset.Set[int], nusers)
	for i := range e.testItemMap {
		e.testItemMap[i] = mapset.NewThreadUnsafeSet[int]()
	}
	var validTest []posPair
	for _, t := range testData {
		u := e.userIndex.Lookup(t.UserId)
		i := e.itemIndex.Lookup(t.ItemId)
		if u == base.Missing || i == base.Missing {
			continue
		}
		validTest = append(validTest, posPair{userIdx: u, itemIdx: i})
		e.testItemMap[u].Add(i)
	}

	e.testEvalSet = buildEvalSet(validTest, e.testItemMap, nitems, e.Config.EvalNumNeg, int64(e.Config.EvalSeed)+1)

	if e.Metrics != nil && len(e.Metrics.TestAvgMetrics) > 0 {
		e.testUsers = train.PrepareTestUsers(testData, e.userIndex, e.itemIndex, nitems, e.Metrics.Config.NumTestUsers, e.Metrics.Config.Seed)
		e.hasTestUsers = true
	}
}

// buildEvalSet samples EvalNumNeg negatives per positive in positives,
// excluding each user's positive set, using a PRNG seeded by seed.
func buildEvalSet(positives []posPair, excludeByUser []mapset.Set[int], nitems, evalNumNeg int, seed int64) []triplet {
	sampler := train.NewNegativeSampler(seed)
	out := make([]triplet, 0, len(positives)*evalNumNeg)
	for _, p := range positives {
		for n := 0; n < evalNumNeg; n++ {
			neg := sampler.Sample(nitems, excludeByUser[p.userIdx])
			out = append(out, triplet{userIdx: p.userIdx, posIdx: p.itemIdx, negIdx: neg})
		}
	}
	return out
}
