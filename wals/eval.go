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

import "github.com/gorse-io/gomf/train"

// evaluate records this epoch's mean training loss and, when enabled,
// the averaged test-user ranking metrics.
func (e *Engine) evaluate(epoch int, trainLoss float64) {
	if e.Metrics == nil {
		return
	}
	e.Metrics.RecordEpoch("train_loss", epoch, trainLoss)

	if e.hasTestUsers && e.Metrics.ShouldCompute(epoch, e.Config.Nepochs) {
		scores := train.ComputeTestScores(e.testUsers, e.userFactors, e.itemFactors, e.executor)
		e.Metrics.ComputeAndRecordTestAvg(epoch, e.testUsers.Labels, scores, e.executor)
	}
}
