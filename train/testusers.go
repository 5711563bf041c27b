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
	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/base/parallel"
	"github.com/gorse-io/gomf/factor"
	"gonum.org/v1/gonum/floats"
)

// TestUsers holds the per-selected-user label matrix prepared for
// averaged test-metric computation: UserIndex[slot] is the dense
// training-side user index of the slot, and Labels[slot] is a
// length-nitems row with the ground-truth value at each test-referenced
// item and zero elsewhere.
type TestUsers struct {
	UserIndex []int
	Labels    [][]float64
}

// PrepareTestUsers collects, in first-seen order, the distinct users of
// the testData triples whose user id and item id are both present in the
// corresponding training IdIndexes (a triple failing this is silently
// dropped on its own; the user's other triples still count), then,
// if numTestUsers > 0 and less than the collected count, deterministically
// subsamples down to numTestUsers using seed. nitems sizes each user's
// label row.
func PrepareTestUsers(testData []Triple, userIndex, itemIndex *base.IdIndex, nitems, numTestUsers int, seed int32) TestUsers {
	labelsByUser := make(map[int][]float64)
	order := make([]int, 0)
	for _, t := range testData {
		u := userIndex.Lookup(t.UserId)
		i := itemIndex.Lookup(t.ItemId)
		if u == base.Missing || i == base.Missing {
			continue
		}
		row, ok := labelsByUser[u]
		if !ok {
			row = make([]float64, nitems)
			labelsByUser[u] = row
			order = append(order, u)
		}
		row[i] = t.Value
	}

	selected := order
	if numTestUsers > 0 && numTestUsers < len(order) {
		rng := base.NewRandomGenerator(int64(seed))
		shuffled := append([]int(nil), order...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		selected = shuffled[:numTestUsers]
	}

	labels := make([][]float64, len(selected))
	for i, u := range selected {
		labels[i] = labelsByUser[u]
	}
	return TestUsers{UserIndex: selected, Labels: labels}
}

// ComputeTestScores scores every item for every selected user:
// scores[slot][i] = bias_i (if itemFactors has biases) + <p_u, q_i>.
// Runs in parallel over the selected users via executor.
func ComputeTestScores(tu TestUsers, userFactors, itemFactors *factor.Data, executor *parallel.ParallelExecutor) [][]float64 {
	nitems := itemFactors.Rows()
	scores := make([][]float64, len(tu.UserIndex))
	for i := range scores {
		scores[i] = make([]float64, nitems)
	}
	executor.Execute(len(tu.UserIndex), func(slot int) {
		u := tu.UserIndex[slot]
		p := userFactors.Row(u)
		row := scores[slot]
		for i := 0; i < nitems; i++ {
			q := itemFactors.Row(i)
			s := floats.Dot(p, q)
			if itemFactors.WithBiases() {
				s += itemFactors.Bias(i)
			}
			row[i] = s
		}
	})
	return scores
}
