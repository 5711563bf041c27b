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

package base

import (
	"github.com/gorse-io/gomf/base/fatal"
	"gonum.org/v1/gonum/mat"
)

// SolveSymmetric solves A x = b for x, where A is an n x n symmetric
// matrix and b has length n, as used by WALS's per-row ridge-regression
// normal equations. A is logically consumed by the call: gonum factorises
// it into internal scratch space rather than mutating the caller's buffer,
// but callers must not rely on reusing A's contents afterwards.
//
// Fails fatally if A is singular or near-singular.
func SolveSymmetric(a *Matrix, b *Vector) *Vector {
	if a.Rows() != a.Cols() {
		fatal.Check("SolveSymmetric: A must be square, got %dx%d", a.Rows(), a.Cols())
	}
	n := a.Rows()
	if b.Len() != n {
		fatal.Check("SolveSymmetric: b has length %d, expected %d", b.Len(), n)
	}

	rawA := make([]float64, len(a.RawData()))
	copy(rawA, a.RawData())
	denseA := mat.NewDense(n, n, rawA)
	denseB := mat.NewDense(n, 1, append([]float64(nil), b.RawData()...))

	var x mat.Dense
	if err := x.Solve(denseA, denseB); err != nil {
		fatal.Check("SolveSymmetric: failed to solve linear system: %v", err)
	}

	out := NewVector(n)
	for i := 0; i < n; i++ {
		out.Set(i, x.At(i, 0))
	}
	return out
}
