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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// makeWellConditionedSymmetric builds A = M Mᵀ + n·I, which is symmetric
// positive definite (and hence well-conditioned) for any M.
func makeWellConditionedSymmetric(n int, seed int64) *Matrix {
	rng := NewRandomGenerator(seed)
	m := rng.UniformMatrix(n, n, -1, 1)
	a := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += m.At(i, k) * m.At(j, k)
			}
			if i == j {
				sum += float64(n)
			}
			a.Set(i, j, sum)
		}
	}
	return a
}

func TestSolveSymmetric_Residual(t *testing.T) {
	const n = 50
	a := makeWellConditionedSymmetric(n, 7)
	rng := NewRandomGenerator(13)
	b := NewVectorFrom(rng.UniformVector(n, -1, 1))

	x := SolveSymmetric(a, b)

	var maxResidual float64
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a.At(i, j) * x.At(j)
		}
		residual := math.Abs(sum - b.At(i))
		if residual > maxResidual {
			maxResidual = residual
		}
	}
	assert.LessOrEqual(t, maxResidual, 1e-8)
}

func TestSolveSymmetric_Identity(t *testing.T) {
	n := 4
	a := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	b := NewVectorFrom([]float64{1, 2, 3, 4})
	x := SolveSymmetric(a, b)
	for i := 0; i < n; i++ {
		assert.InDelta(t, b.At(i), x.At(i), 1e-12)
	}
}
