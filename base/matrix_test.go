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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix_SetAt(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(0, 0, 1)
	m.Set(0, 2, 3)
	m.Set(1, 1, 5)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 3.0, m.At(0, 2))
	assert.Equal(t, 5.0, m.At(1, 1))
	assert.Equal(t, 0.0, m.At(1, 0))
}

func TestMatrix_Row(t *testing.T) {
	m := NewMatrix(2, 3)
	row := m.Row(1)
	row[0] = 9
	assert.Equal(t, 9.0, m.At(1, 0))
}

func TestMatrix_Transpose_Involution(t *testing.T) {
	rng := NewRandomGenerator(1)
	m := rng.UniformMatrix(4, 7, -1, 1)
	tt := m.Transpose().Transpose()
	assert.Equal(t, m.Rows(), tt.Rows())
	assert.Equal(t, m.Cols(), tt.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			assert.Equal(t, m.At(r, c), tt.At(r, c))
		}
	}
}

func TestMatrix_Transpose_Shape(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(0, 1, 7)
	tp := m.Transpose()
	assert.Equal(t, 3, tp.Rows())
	assert.Equal(t, 2, tp.Cols())
	assert.Equal(t, 7.0, tp.At(1, 0))
}

func TestMatrix_Add(t *testing.T) {
	a := NewMatrix(2, 2)
	a.Set(0, 0, 1)
	a.Set(1, 1, 2)
	b := NewMatrix(2, 2)
	b.Set(0, 0, 3)
	b.Set(1, 1, 4)
	sum := a.Add(b)
	assert.Equal(t, 4.0, sum.At(0, 0))
	assert.Equal(t, 6.0, sum.At(1, 1))
}

func TestMatrix_Clone_Independent(t *testing.T) {
	m := NewMatrix(1, 2)
	m.Set(0, 0, 1)
	c := m.Clone()
	c.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 99.0, c.At(0, 0))
}

func TestVector_SetAt(t *testing.T) {
	v := NewVector(3)
	v.Set(1, 2.5)
	assert.Equal(t, 2.5, v.At(1))
	assert.Equal(t, 3, v.Len())
}
