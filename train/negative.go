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
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gorse-io/gomf/base"
)

// NegativeSampler draws uniform-random item indices rejected against a
// user's positive set, from a seeded RandomGenerator. It keeps no cache of
// its own: BPR draws each frozen evaluation set from one once, at
// initialisation, and reuses that set every epoch, while its training loop
// creates a fresh sampler each epoch.
//
// Sample is only efficient when each user's positive set is much smaller
// than nitems — it is rejection sampling, and will spin if the positive
// set covers most of the item space.
type NegativeSampler struct {
	rng base.RandomGenerator
}

// NewNegativeSampler creates a NegativeSampler seeded with seed.
func NewNegativeSampler(seed int64) NegativeSampler {
	return NegativeSampler{rng: base.NewRandomGenerator(seed)}
}

// NewNegativeSamplerFromRand wraps an existing *rand.Rand, typically one
// returned by base.NewRand (whose source is mutex-guarded) so it may be
// shared across Hogwild's worker goroutines.
func NewNegativeSamplerFromRand(r *rand.Rand) NegativeSampler {
	return NegativeSampler{rng: base.RandomGenerator{Rand: r}}
}

// Sample draws one item index in [0, nitems) that is not a member of
// positive.
func (s NegativeSampler) Sample(nitems int, positive mapset.Set[int]) int {
	for {
		candidate := s.rng.Intn(nitems)
		if !positive.Contains(candidate) {
			return candidate
		}
	}
}

// SampleN draws n distinct-per-call (not necessarily distinct from each
// other) negatives, one per call to Sample.
func (s NegativeSampler) SampleN(nitems, n int, positive mapset.Set[int]) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Sample(nitems, positive)
	}
	return out
}
