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

package metric

// RecordEpoch appends one (epoch, value) sample directly under key,
// bypassing the named-metric lookup. Used by the training engines to
// record their own loss series (e.g. "train_loss", "test_loss"), which
// are not registry metrics.
func (e *Engine) RecordEpoch(key string, epoch int, value float64) {
	e.series[key] = append(e.series[key], EpochValue{Epoch: epoch, Value: value})
}
