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
	"math/rand"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// RandomGenerator is the random number source used for factor
// initialisation and negative/test-user sampling. It is f64-native
// throughout, unlike the reference codebase's f32 variant, since this
// module's factor storage is entirely f64.
type RandomGenerator struct {
	*rand.Rand
}

// NewRandomGenerator creates a seeded RandomGenerator.
func NewRandomGenerator(seed int64) RandomGenerator {
	return RandomGenerator{rand.New(rand.NewSource(seed))}
}

// UniformVector makes a vec filled with uniform random floats in [low, high).
func (rng RandomGenerator) UniformVector(size int, low, high float64) []float64 {
	ret := make([]float64, size)
	scale := high - low
	for i := range ret {
		ret[i] = rng.Float64()*scale + low
	}
	return ret
}

// NormalVector makes a vec filled with normally distributed floats.
func (rng RandomGenerator) NormalVector(size int, mean, stdDev float64) []float64 {
	ret := make([]float64, size)
	for i := range ret {
		ret[i] = rng.NormFloat64()*stdDev + mean
	}
	return ret
}

// UniformMatrix makes a Matrix filled with uniform random floats in
// [low, high), in row-major order.
func (rng RandomGenerator) UniformMatrix(rows, cols int, low, high float64) *Matrix {
	m := NewMatrix(rows, cols)
	scale := high - low
	m.SetFunc(func(_, _ int) float64 {
		return rng.Float64()*scale + low
	})
	return m
}

// NormalMatrix makes a Matrix filled with normally distributed floats, in
// row-major order.
func (rng RandomGenerator) NormalMatrix(rows, cols int, mean, stdDev float64) *Matrix {
	m := NewMatrix(rows, cols)
	m.SetFunc(func(_, _ int) float64 {
		return rng.NormFloat64()*stdDev + mean
	})
	return m
}

// Sample draws n distinct ints from [low, high), excluding any value
// present in the supplied exclusion sets. If n is large enough relative to
// the admissible interval, Sample falls back to an exhaustive scan instead
// of rejection sampling to guarantee termination.
func (rng RandomGenerator) Sample(low, high, n int, exclude ...mapset.Set[int]) []int {
	intervalLength := high - low
	excludeSet := mapset.NewSet[int]()
	for _, set := range exclude {
		excludeSet = excludeSet.Union(set)
	}
	sampled := make([]int, 0, n)
	if n >= intervalLength-excludeSet.Cardinality() {
		for i := low; i < high; i++ {
			if !excludeSet.Contains(i) {
				sampled = append(sampled, i)
				excludeSet.Add(i)
			}
		}
	} else {
		for len(sampled) < n {
			v := rng.Intn(intervalLength) + low
			if !excludeSet.Contains(v) {
				sampled = append(sampled, v)
				excludeSet.Add(v)
			}
		}
	}
	return sampled
}

// lockedSource allows a random number generator to be shared across
// goroutines, as required by BPR's Hogwild mode where every worker reads
// from one shared PRNG; each call into the source is serialised by a
// mutex. Mirrors math/rand's internal lockedSource, which is not exported.
type lockedSource struct {
	mut sync.Mutex
	src rand.Source
}

// NewRand returns a *rand.Rand safe for concurrent use by multiple
// goroutines.
func NewRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed)})
}

func (r *lockedSource) Int63() (n int64) {
	r.mut.Lock()
	n = r.src.Int63()
	r.mut.Unlock()
	return
}

func (r *lockedSource) Seed(seed int64) {
	r.mut.Lock()
	r.src.Seed(seed)
	r.mut.Unlock()
}
