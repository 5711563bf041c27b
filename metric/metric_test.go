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

func TestAUC(t *testing.T) {
	assert.InDelta(t, 1.0, AUC{}.Compute([]float64{1, 0}, []float64{3, 2}), 1e-9)
	assert.InDelta(t, 0.0, AUC{}.Compute([]float64{0, 1}, []float64{3, 2}), 1e-9)
	assert.InDelta(t, 0.5, AUC{}.Compute([]float64{1, 0, 1}, []float64{3, 2, 0}), 1e-9)
}

func TestAUC_Degenerate(t *testing.T) {
	assert.Equal(t, 1.0, AUC{}.Compute([]float64{1, 1, 1}, []float64{1, 2, 3}))
	assert.Equal(t, 1.0, AUC{}.Compute([]float64{0, 0, 0}, []float64{1, 2, 3}))
}

func TestAveragePrecision(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, AveragePrecision{}.Compute([]float64{0, 1, 0}, []float64{3, 1, 2}), 1e-9)
}

func TestPrecisionAtK(t *testing.T) {
	assert.InDelta(t, 0.5, PrecisionAtK{K: 2}.Compute([]float64{0, 1, 0}, []float64{3, 2, 1}), 1e-9)
}

func TestMSE(t *testing.T) {
	assert.InDelta(t, 0.0, MSE{}.Compute([]float64{1, 2}, []float64{1, 2}), 1e-9)
	assert.InDelta(t, 1.0, MSE{}.Compute([]float64{0, 0}, []float64{1, 1}), 1e-9)
}

func TestRecallAtK(t *testing.T) {
	assert.InDelta(t, 1.0, RecallAtK{K: 2}.Compute([]float64{0, 1, 0}, []float64{3, 2, 1}), 1e-9)
	assert.InDelta(t, 0.5, RecallAtK{K: 1}.Compute([]float64{1, 1, 0}, []float64{3, 2, 1}), 1e-9)
}

func TestRegistry_Exists(t *testing.T) {
	assert.True(t, Exists("mse"))
	assert.True(t, Exists("auc"))
	assert.True(t, Exists("ap"))
	assert.True(t, Exists("p@5"))
	assert.True(t, Exists("r@5"))
	assert.False(t, Exists("p5"))
	assert.False(t, Exists("@5"))
	assert.False(t, Exists("p@"))
	assert.False(t, Exists("p@-1"))
	assert.False(t, Exists("unknown"))
}

func TestRegistry_ParametricCached(t *testing.T) {
	m1, ok1 := Get("p@7")
	m2, ok2 := Get("p@7")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, m1, m2)
}

func TestAverage(t *testing.T) {
	labels := [][]float64{{1, 0}, {0, 1}}
	scores := [][]float64{{3, 2}, {3, 2}}
	avg := Average(AUC{}, labels, scores)
	assert.InDelta(t, 0.5, avg, 1e-9)
}
