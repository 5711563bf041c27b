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
	"sort"

	"github.com/gorse-io/gomf/base"
	"github.com/gorse-io/gomf/train"
)

// Signal is one observed (opposite-entity id, value) pair within a
// SignalGroup.
type Signal struct {
	Id    int64
	Value float64
}

// SignalGroup collects every Signal recorded against one source entity
// (a user when grouping by user, an item when grouping by item).
type SignalGroup struct {
	SourceId int64
	Group    []Signal
}

// sortedByUser returns a stable copy of data ordered by (UserId, ItemId).
func sortedByUser(data []train.Triple) []train.Triple {
	out := make([]train.Triple, len(data))
	copy(out, data)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UserId != out[j].UserId {
			return out[i].UserId < out[j].UserId
		}
		return out[i].ItemId < out[j].ItemId
	})
	return out
}

// swapEntities returns a copy of data with UserId and ItemId exchanged,
// letting groupSignals be reused verbatim to group by item instead of
// user.
func swapEntities(data []train.Triple) []train.Triple {
	out := make([]train.Triple, len(data))
	for i, t := range data {
		out[i] = train.Triple{UserId: t.ItemId, ItemId: t.UserId, Value: t.Value}
	}
	return out
}

// groupSignals partitions a UserId-sorted triple slice into one
// SignalGroup per distinct UserId, in ascending UserId order, and builds
// the IdIndex mapping each source id to its group's position. The
// position of group g in the returned slice always equals
// index.Lookup(g.SourceId): both are assigned by the same ascending walk.
func groupSignals(sorted []train.Triple) ([]SignalGroup, *base.IdIndex) {
	index := base.NewIdIndex()
	var groups []SignalGroup
	for _, t := range sorted {
		pos := index.GetOrInsert(t.UserId)
		if pos == len(groups) {
			groups = append(groups, SignalGroup{SourceId: t.UserId})
		}
		groups[pos].Group = append(groups[pos].Group, Signal{Id: t.ItemId, Value: t.Value})
	}
	return groups, index
}
