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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/gomf/factor"
	"github.com/gorse-io/gomf/train"
)

func TestGroupSignals_IndexInvariant(t *testing.T) {
	data := []train.Triple{
		{UserId: 5, ItemId: 20, Value: 1},
		{UserId: 3, ItemId: 10, Value: 2},
		{UserId: 5, ItemId: 10, Value: 1},
		{UserId: 1, ItemId: 30, Value: 1},
	}
	groups, index := groupSignals(sortedByUser(data))

	assert.Equal(t, []int64{1, 3, 5}, index.Ids())
	for pos, g := range groups {
		assert.Equal(t, pos, index.Lookup(g.SourceId))
	}
	assert.True(t, groups[0].SourceId < groups[1].SourceId)
	assert.True(t, groups[1].SourceId < groups[2].SourceId)

	// user 5 has two signals; they must appear in ascending item order.
	u5 := groups[index.Lookup(5)]
	assert.Equal(t, []Signal{{Id: 10, Value: 1}, {Id: 20, Value: 1}}, u5.Group)
}

func TestEngine_PerRowSolve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nfactors = 3
	cfg.ConfidenceWeight = 1
	cfg.RegularizationLambda = 1
	cfg.Nthreads = 2
	e := NewEngine(cfg)
	defer e.Close()

	data := []train.Triple{
		{UserId: 0, ItemId: 0, Value: 1},
		{UserId: 0, ItemId: 1, Value: 1},
		{UserId: 1, ItemId: 0, Value: 0},
		{UserId: 2, ItemId: 1, Value: 0},
	}
	e.Init(data)

	// Override the random item-factor init with the scenario's fixed
	// Y[i, j] = 0.1 and re-zero user factors.
	e.itemFactors = factor.New(e.NumItems(), 3, false)
	e.itemFactors.SetFactors(func(r, c int) float64 { return 0.1 })
	e.userFactors = factor.New(e.NumUsers(), 3, false)

	loss := e.updateSide(e.userFactors, e.userSignals, e.itemFactors, e.itemIndex)

	u0 := e.userIndex.Lookup(0)
	row0 := e.userFactors.Row(u0)
	for _, v := range row0 {
		assert.InDelta(t, 0.357, v, 0.01)
	}

	// updateSide returns the summed row loss of all three users. User 0
	// (two signals, c = 2) solves to x0 = 0.4/1.12 per component; users 1
	// and 2 (one value-0 signal each, c = 1) solve to x1 = 0.1/1.06.
	x0 := 0.4 / 1.12
	x1 := 0.1 / 1.06
	expectedLoss := (4 + 0.36*x0*x0 - 2*1.2*x0) + 2*(1+0.18*x1*x1-2*0.3*x1)
	assert.InDelta(t, expectedLoss, loss, 0.01)
	assert.False(t, math.IsNaN(loss))
}

func TestEngine_OptimizeConverges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nepochs = 10
	cfg.Nfactors = 2
	cfg.Nthreads = 2
	cfg.RegularizationLambda = 0.1
	cfg.ConfidenceWeight = 10
	cfg.InitDistributionBound = 0.1
	cfg.Seed = 7
	e := NewEngine(cfg)
	defer e.Close()

	data := []train.Triple{
		{UserId: 1, ItemId: 1, Value: 1},
		{UserId: 2, ItemId: 2, Value: 1},
	}
	e.Init(data)
	e.Optimize()

	u1 := e.userIndex.Lookup(1)
	u2 := e.userIndex.Lookup(2)
	i1 := e.itemIndex.Lookup(1)
	i2 := e.itemIndex.Lookup(2)

	assert.Greater(t, e.Score(u1, i1), e.Score(u1, i2))
	assert.Greater(t, e.Score(u2, i2), e.Score(u2, i1))
}

func TestComputeGramMatrix(t *testing.T) {
	y := factor.New(4, 2, false)
	y.SetFactors(func(r, c int) float64 { return 1 })

	gram := computeGramMatrix(y, 3)
	assert.Equal(t, 2, gram.Rows())
	assert.Equal(t, 2, gram.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.Equal(t, 4.0, gram.At(r, c))
		}
	}
}
