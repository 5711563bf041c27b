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

// Missing is returned by IdIndex.Lookup when the id has never been seen.
const Missing = -1

// IdIndex manages the bijection between sparse external ids (64-bit, e.g. a
// raw user or item id from the dataset) and dense, contiguous internal
// indices used to address rows of a factor matrix. It is append-only: once
// an id has been assigned an index, that index never changes, and indices
// fill [0, Size()) without gaps.
type IdIndex struct {
	ids     []int64       // dense index -> external id
	numbers map[int64]int // external id -> dense index
}

// NewIdIndex creates an empty IdIndex.
func NewIdIndex() *IdIndex {
	return &IdIndex{
		ids:     make([]int64, 0),
		numbers: make(map[int64]int),
	}
}

// Size returns the number of distinct ids seen so far.
func (idx *IdIndex) Size() int {
	if idx == nil {
		return 0
	}
	return len(idx.ids)
}

// GetOrInsert returns the dense index for id, assigning a new one (equal to
// the index's size at the time of insertion) the first time id is seen.
func (idx *IdIndex) GetOrInsert(id int64) int {
	if i, ok := idx.numbers[id]; ok {
		return i
	}
	i := len(idx.ids)
	idx.numbers[id] = i
	idx.ids = append(idx.ids, id)
	return i
}

// Lookup returns the dense index for id, or Missing if id was never
// inserted.
func (idx *IdIndex) Lookup(id int64) int {
	if i, ok := idx.numbers[id]; ok {
		return i
	}
	return Missing
}

// IdOf returns the external id stored at dense index i.
func (idx *IdIndex) IdOf(i int) int64 {
	return idx.ids[i]
}

// Ids returns the index -> id slice, in insertion (i.e. index) order.
// Callers must not mutate the returned slice.
func (idx *IdIndex) Ids() []int64 {
	return idx.ids
}
