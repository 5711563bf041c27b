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
package train

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"

	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/base/parallel"
	"github.com/gorse-io/gomf/factor"
)

func TestLeaveOneOutSplit(t *testing.T) {
	data := []Triple{
		{UserId: 1, ItemId: 10, Value: 1},
		{UserId: 1, ItemId: 11, Value: 1},
		{UserId: 2, ItemId: 20, Value: 1},
	}
	trainSet, testSet := LeaveOneOutSplit(data, 0, 1)
	assert.Len(t, testSet, 2) // one per user
	assert.Len(t, trainSet, 1)

	seenUsers := map[int64]bool{}
	for _, tr := range testSet {
		seenUsers[tr.UserId] = true
	}
	assert.Len(t, seenUsers, 2)
}

func TestLeaveOneOutSplit_Subsample(t *testing.T) {
	data := []Triple{
		{UserId: 1, ItemId: 10, Value: 1},
		{UserId: 2, ItemId: 20, Value: 1},
		{UserId: 3, ItemId: 30, Value: 1},
	}
	_, testSet := LeaveOneOutSplit(data, 1, 42)
	assert.Len(t, testSet, 1)
}

func TestNegativeSampler_ExcludesPositives(t *testing.T) {
	s := NewNegativeSampler(0)
	positive := mapset.NewSet(0, 1, 2, 3)
	for i := 0; i < 100; i++ {
		v := s.Sample(10, positive)
		assert.False(t, positive.Contains(v))
	}
}

func TestPrepareTestUsers(t *testing.T) {
	userIndex := base.NewIdIndex()
	itemIndex := base.NewIdIndex()
	userIndex.GetOrInsert(1)
	userIndex.GetOrInsert(2)
	itemIndex.GetOrInsert(100)
	itemIndex.GetOrInsert(101)

	testData := []Triple{
		{UserId: 1, ItemId: 100, Value: 1},
		{UserId: 1, ItemId: 101, Value: 1},
		{UserId: 2, ItemId: 100, Value: 1},
		{UserId: 99, ItemId: 100, Value: 1}, // unknown user, dropped
		{UserId: 1, ItemId: 999, Value: 1},  // unknown item, dropped
	}
	tu := PrepareTestUsers(testData, userIndex, itemIndex, 2, 0, 0)
	assert.Len(t, tu.UserIndex, 2)
	assert.Len(t, tu.Labels, 2)
	for _, row := range tu.Labels {
		assert.Len(t, row, 2)
	}
}

func TestComputeTestScores(t *testing.T) {
	userFactors := factor.New(2, 2, false)
	userFactors.SetFactors(func(r, c int) float64 { return 1 })
	itemFactors := factor.New(2, 2, true)
	itemFactors.SetFactors(func(r, c int) float64 { return 1 })
	itemFactors.SetBiases(func(r int) float64 { return 0.5 })

	tu := TestUsers{UserIndex: []int{0, 1}, Labels: [][]float64{{0, 1}, {1, 0}}}
	executor := parallel.NewParallelExecutor(2)
	defer executor.Close()

	scores := ComputeTestScores(tu, userFactors, itemFactors, executor)
	assert.Len(t, scores, 2)
	for _, row := range scores {
		for _, s := range row {
			assert.InDelta(t, 2.5, s, 1e-9) // dot([1,1],[1,1]) + 0.5
		}
	}
}
