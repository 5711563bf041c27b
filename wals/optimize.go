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
	"github.com/gorse-io/gomf/base/parallel"
	"github.com/gorse-io/gomf/factor"
)

// Optimize runs Config.Nepochs epochs, each two half-epochs: fix item
// factors and re-solve every user row, then fix the just-updated user
// factors and re-solve every item row. Fatal if Init has not run, or if
// Optimize has already run.
func (e *Engine) Optimize() {
	e.checkNotOptimized()
	e.optimized = true

	for epoch := 1; epoch <= e.Config.Nepochs; epoch++ {
		e.updateSide(e.userFactors, e.userSignals, e.itemFactors, e.itemIndex)
		totalLoss := e.updateSide(e.itemFactors, e.itemSignals, e.userFactors, e.userIndex)
		trainLoss := totalLoss / float64(e.NumUsers()*e.NumItems())
		e.evaluate(epoch, trainLoss)
	}
}

// updateSide re-solves every row of left independently in parallel
// against the fixed right matrix, writing each solved row back in
// place, and returns the summed per-row loss over the whole side.
func (e *Engine) updateSide(left *factor.Data, signals []SignalGroup, right *factor.Data, rightIndex *base.IdIndex) float64 {
	gram := computeGramMatrix(right, e.Config.Nthreads)
	alpha := e.Config.ConfidenceWeight
	lambda := e.Config.RegularizationLambda

	return parallel.MapReduce(e.executor, len(signals), 0.0,
		func(taskId int) float64 {
			g := signals[taskId]
			x, rowLoss := updateFactorsForOne(g.Group, right, rightIndex, gram, alpha, lambda)
			copy(left.Row(taskId), x)
			return rowLoss
		},
		func(acc, x float64) float64 { return acc + x },
	)
}
