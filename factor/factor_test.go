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
package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestData_SetFactors(t *testing.T) {
	d := New(3, 2, false)
	d.SetFactors(func(row, col int) float64 { return float64(row*2 + col) })
	assert.Equal(t, []float64{0, 1}, d.Row(0))
	assert.Equal(t, []float64{2, 3}, d.Row(1))
	assert.Equal(t, []float64{4, 5}, d.Row(2))
}

func TestData_Biases(t *testing.T) {
	d := New(3, 2, true)
	d.SetBiases(func(row int) float64 { return float64(row) * 10 })
	assert.Equal(t, 0.0, d.Bias(0))
	assert.Equal(t, 10.0, d.Bias(1))
	assert.Equal(t, 20.0, d.Bias(2))
	d.SetBias(1, 99)
	assert.Equal(t, 99.0, d.Bias(1))
}

func TestData_WithoutBiases(t *testing.T) {
	d := New(2, 2, false)
	assert.False(t, d.WithBiases())
}
