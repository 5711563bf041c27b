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
	"sync"

	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/factor"
)

// computeGramMatrix returns YᵀY for the factor matrix Y, partitioning
// its rows into nthreads contiguous chunks of ceil(rows/nthreads),
// accumulating a local (k, k) partial per chunk, then summing. Disjoint
// row ranges need no synchronisation between chunks.
func computeGramMatrix(y *factor.Data, nthreads int) *base.Matrix {
	n := y.Rows()
	k := y.Dim()
	chunk := (n + nthreads - 1) / nthreads

	partials := make([]*base.Matrix, nthreads)
	var wg sync.WaitGroup
	for t := 0; t < nthreads; t++ {
		begin := t * chunk
		if begin >= n {
			partials[t] = base.NewMatrix(k, k)
			continue
		}
		end := begin + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(t, begin, end int) {
			defer wg.Done()
			local := base.NewMatrix(k, k)
			for r := begin; r < end; r++ {
				row := y.Row(r)
				for a := 0; a < k; a++ {
					for b := 0; b < k; b++ {
						local.Set(a, b, local.At(a, b)+row[a]*row[b])
					}
				}
			}
			partials[t] = local
		}(t, begin, end)
	}
	wg.Wait()

	sum := base.NewMatrix(k, k)
	for _, p := range partials {
		sum = sum.Add(p)
	}
	return sum
}
