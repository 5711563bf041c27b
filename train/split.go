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

import "github.com/gorse-io/gomf/base"

// LeaveOneOutSplit holds out one positive interaction per user (or per a
// seeded sample of numTestUsers of them) into the returned test slice;
// the rest remain in train. Mirrors the reference codebase's
// user-leave-one-out dataset split, generalized to this module's plain
// Triple representation. numTestUsers == 0 means "every user".
func LeaveOneOutSplit(data []Triple, numTestUsers int, seed int64) (trainSet, testSet []Triple) {
	byUser := make(map[int64][]int) // userId -> indices into data
	order := make([]int64, 0)
	for i, t := range data {
		if _, ok := byUser[t.UserId]; !ok {
			order = append(order, t.UserId)
		}
		byUser[t.UserId] = append(byUser[t.UserId], i)
	}

	users := order
	if numTestUsers > 0 && numTestUsers < len(order) {
		rng := base.NewRandomGenerator(seed)
		shuffled := append([]int64(nil), order...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		users = shuffled[:numTestUsers]
	}
	heldOut := make(map[int]bool, len(users))
	rng := base.NewRandomGenerator(seed)
	for _, u := range users {
		indices := byUser[u]
		pick := indices[rng.Intn(len(indices))]
		heldOut[pick] = true
	}

	trainSet = make([]Triple, 0, len(data))
	testSet = make([]Triple, 0, len(heldOut))
	for i, t := range data {
		if heldOut[i] {
			testSet = append(testSet, t)
		} else {
			trainSet = append(trainSet, t)
		}
	}
	return trainSet, testSet
}
