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
	"math"

	"github.com/gorse-io/gomf/train"
)

// evaluate computes mean pairwise loss over the frozen evalSet and
// testEvalSet (recorded as "train_loss"/"test_loss" when Metrics is
// set; -1.0 sentinel when a set is empty) and, when enabled, averaged
// test-user ranking metrics.
func (e *Engine) evaluate(epoch int) {
	trainLoss := e.meanLoss(e.evalSet)
	testLoss := e.meanLoss(e.testEvalSet)

	if e.Metrics != nil {
		e.Metrics.RecordEpoch("train_loss", epoch, trainLoss)
		e.Metrics.RecordEpoch("test_loss", epoch, testLoss)

		if e.hasTestUsers && e.Metrics.ShouldCompute(epoch, e.Config.Nepochs) {
			scores := train.ComputeTestScores(e.testUsers, e.userFactors, e.itemFactors, e.executor)
			e.Metrics.ComputeAndRecordTestAvg(epoch, e.testUsers.Labels, scores, e.executor)
		}
	}
}

func (e *Engine) meanLoss(set []triplet) float64 {
	if len(set) == 0 {
		return -1.0
	}
	var sum float64
	for _, t := range set {
		sum += e.pairLoss(t)
	}
	return sum / float64(len(set))
}

// pairLoss computes log(1 + e^-xhat) for one frozen evaluation triplet.
func (e *Engine) pairLoss(t triplet) float64 {
	p := e.userFactors.Row(t.userIdx)
	qi := e.itemFactors.Row(t.posIdx)
	qj := e.itemFactors.Row(t.negIdx)

	var dot float64
	for f := range p {
		dot += p[f] * (qi[f] - qj[f])
	}
	var biasDiff float64
	if e.Config.UseBiases {
		biasDiff = e.itemFactors.Bias(t.posIdx) - e.itemFactors.Bias(t.negIdx)
	}
	xhat := biasDiff + dot
	return math.Log1p(math.Exp(-xhat))
}
