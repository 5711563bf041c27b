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

// Package train holds the scaffolding shared by the BPR and WALS
// engines: the interaction triple type, a leave-one-out splitter, a
// seeded negative sampler, test-user subsampling, and parallel
// test-score computation.
package train

// Triple is one interaction record: a user, an item, and a confidence
// or rating value. Values < 1.0 are treated as absent by BPR; WALS
// retains the value as a confidence multiplier.
type Triple struct {
	UserId int64
	ItemId int64
	Value  float64
}
