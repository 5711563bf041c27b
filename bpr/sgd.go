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

	"github.com/gorse-io/gomf/base/fatal"
	"github.com/gorse-io/gomf/train"
)

// update applies one SGD step for triplet (u, i, j) against the shared
// userFactors/itemFactors storage. It is called, unsynchronised, by every
// Hogwild worker as well as by the single-threaded path; rows are
// disjoint-enough in practice that lost updates are an accepted cost of
// the lock-free design, not a bug.
func (e *Engine) update(u, i, j int, lr float64) {
	p := e.userFactors.Row(u)
	qi := e.itemFactors.Row(i)
	qj := e.itemFactors.Row(j)

	var dot float64
	for f := range p {
		dot += p[f] * (qi[f] - qj[f])
	}

	var biasDiff float64
	if e.Config.UseBiases {
		biasDiff = e.itemFactors.Bias(i) - e.itemFactors.Bias(j)
	}
	xhat := biasDiff + dot
	eGrad := 1 / (1 + math.Exp(xhat))
	if math.IsNaN(eGrad) || math.IsInf(eGrad, 0) {
		fatal.Check("bpr: non-finite gradient term (xhat=%v); learning rate likely diverged", xhat)
	}

	if e.Config.UseBiases {
		bi := e.itemFactors.Bias(i)
		bj := e.itemFactors.Bias(j)
		e.itemFactors.SetBias(i, bi+lr*(eGrad-e.Config.BiasLambda*bi))
		e.itemFactors.SetBias(j, bj+lr*(-eGrad-e.Config.BiasLambda*bj))
	}

	for f := range p {
		puf := p[f]
		p[f] = puf + lr*(eGrad*(qi[f]-qj[f])-e.Config.UserLambda*puf)
		qi[f] = qi[f] + lr*(eGrad*p[f]-e.Config.ItemLambda*qi[f])
		qj[f] = qj[f] + lr*(-eGrad*p[f]-e.Config.ItemLambda*qj[f])
	}
}

// sampleNegative draws one negative item index for user u, uniform over
// [0, nitems), rejecting items already present in u's positive set.
// Correct only when the positive set is much smaller than nitems.
func (e *Engine) sampleNegative(sampler train.NegativeSampler, u int) int {
	return sampler.Sample(e.itemIndex.Size(), e.itemMap[u])
}
