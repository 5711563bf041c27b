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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_AddMetric_UnknownRejected(t *testing.T) {
	e := NewEngine(EngineConfig{})
	assert.True(t, e.AddTestAvgMetric("auc"))
	assert.False(t, e.AddTestAvgMetric("bogus"))
	assert.Equal(t, []string{"auc"}, e.TestAvgMetrics)
}

func TestEngine_ComputeAndRecordTestAvg(t *testing.T) {
	e := NewEngine(EngineConfig{AlwaysCompute: true})
	e.AddTestAvgMetric("auc")

	labels := [][]float64{{1, 0}, {0, 1}}
	scores := [][]float64{{3, 2}, {3, 2}}
	e.ComputeAndRecordTestAvg(1, labels, scores, nil)
	e.ComputeAndRecordTestAvg(2, labels, scores, nil)

	series := e.Series("test_avg_auc")
	assert.Len(t, series, 2)
	assert.Equal(t, 1, series[0].Epoch)
	assert.InDelta(t, 0.5, series[0].Value, 1e-9)
}

func TestEngine_ShouldCompute(t *testing.T) {
	e := NewEngine(EngineConfig{AlwaysCompute: false})
	assert.False(t, e.ShouldCompute(1, 10))
	assert.True(t, e.ShouldCompute(10, 10))

	e2 := NewEngine(EngineConfig{AlwaysCompute: true})
	assert.True(t, e2.ShouldCompute(1, 10))
}
