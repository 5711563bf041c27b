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
)

// updateFactorsForOne solves the Hu-Koren-Volinsky ridge regression for
// one row of the "left" matrix, given its observed signals against the
// fixed "right" matrix y, y's precomputed YᵀY gram matrix, and the
// confidence weight alpha and regularisation lambda. gram is taken by
// value (via Clone) on every call so the caller's precomputed YᵀY is
// never clobbered across rows. Returns the solved row and this row's
// contribution to the half-epoch's total loss.
func updateFactorsForOne(signals []Signal, y *factor.Data, yIndex *base.IdIndex, gram *base.Matrix, alpha, lambda float64) ([]float64, float64) {
	k := y.Dim()
	b := base.NewVector(k)
	bigB := gram.Clone()
	var sumC float64

	for _, s := range signals {
		row := y.Row(yIndex.Lookup(s.Id))
		c := 1 + alpha*s.Value
		sumC += c
		for a := 0; a < k; a++ {
			b.Set(a, b.At(a)+c*row[a])
			for c2 := 0; c2 < k; c2++ {
				bigB.Set(a, c2, bigB.At(a, c2)+alpha*s.Value*row[a]*row[c2])
			}
		}
	}

	a := bigB.Clone()
	for d := 0; d < k; d++ {
		a.Set(d, d, a.At(d, d)+lambda)
	}
	x := base.SolveSymmetric(a, b)
	xr := x.RawData()

	var xtBx, xtb float64
	for r := 0; r < k; r++ {
		xtb += xr[r] * b.At(r)
		var rowDot float64
		for c := 0; c < k; c++ {
			rowDot += bigB.At(r, c) * xr[c]
		}
		xtBx += xr[r] * rowDot
	}
	loss := sumC + xtBx - 2*xtb

	return xr, loss
}
