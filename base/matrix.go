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

import "github.com/gorse-io/gomf/base/fatal"

// Matrix is a row-major dense f64 matrix. Element (r, c) is stored at offset
// r*ncols + c, so a row is always contiguous, which lets Row return a slice
// view directly into the backing array.
type Matrix struct {
	nrows, ncols int
	data         []float64
}

// NewMatrix creates an nrows x ncols matrix of zeros. Both dimensions must
// be positive; zero or negative dimensions are a programmer error.
func NewMatrix(nrows, ncols int) *Matrix {
	if nrows <= 0 || ncols <= 0 {
		fatal.Check("matrix dimensions must be positive, got %dx%d", nrows, ncols)
	}
	return &Matrix{
		nrows: nrows,
		ncols: ncols,
		data:  make([]float64, nrows*ncols),
	}
}

// NewMatrixFrom wraps an existing contiguous row-major buffer without
// copying. len(data) must equal nrows*ncols.
func NewMatrixFrom(nrows, ncols int, data []float64) *Matrix {
	if nrows <= 0 || ncols <= 0 {
		fatal.Check("matrix dimensions must be positive, got %dx%d", nrows, ncols)
	}
	if len(data) != nrows*ncols {
		fatal.Check("matrix data has %d elements, expected %d", len(data), nrows*ncols)
	}
	return &Matrix{nrows: nrows, ncols: ncols, data: data}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.nrows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.ncols }

// At returns the element at (r, c).
func (m *Matrix) At(r, c int) float64 {
	return m.data[r*m.ncols+c]
}

// Set assigns the element at (r, c).
func (m *Matrix) Set(r, c int, v float64) {
	m.data[r*m.ncols+c] = v
}

// Row returns a mutable slice view of row r; writes through the slice
// mutate the matrix in place.
func (m *Matrix) Row(r int) []float64 {
	return m.data[r*m.ncols : (r+1)*m.ncols]
}

// RawData exposes the contiguous backing buffer, row-major, for interop
// with numerical libraries (e.g. gonum's mat.Dense, which wraps a raw
// []float64 directly without copying).
func (m *Matrix) RawData() []float64 {
	return m.data
}

// SetFunc initialises every element in (row, col) order from a generating
// function, typically a random-number generator.
func (m *Matrix) SetFunc(fn func(r, c int) float64) {
	for r := 0; r < m.nrows; r++ {
		for c := 0; c < m.ncols; c++ {
			m.Set(r, c, fn(r, c))
		}
	}
}

// Clone returns a deep (value) copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{nrows: m.nrows, ncols: m.ncols, data: data}
}

// Transpose returns a new out-of-place transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.ncols, m.nrows)
	for r := 0; r < m.nrows; r++ {
		for c := 0; c < m.ncols; c++ {
			t.Set(c, r, m.At(r, c))
		}
	}
	return t
}

// Add returns the element-wise sum of m and other. Both matrices must have
// identical shape; a shape mismatch is a programmer error.
func (m *Matrix) Add(other *Matrix) *Matrix {
	if m.nrows != other.nrows || m.ncols != other.ncols {
		fatal.Check("matrix shape mismatch: %dx%d + %dx%d", m.nrows, m.ncols, other.nrows, other.ncols)
	}
	sum := NewMatrix(m.nrows, m.ncols)
	for i := range m.data {
		sum.data[i] = m.data[i] + other.data[i]
	}
	return sum
}

// Vector is a dense f64 vector.
type Vector struct {
	data []float64
}

// NewVector creates a length-n vector of zeros.
func NewVector(n int) *Vector {
	if n <= 0 {
		fatal.Check("vector length must be positive, got %d", n)
	}
	return &Vector{data: make([]float64, n)}
}

// NewVectorFrom wraps an existing slice without copying.
func NewVectorFrom(data []float64) *Vector {
	if len(data) == 0 {
		fatal.Check("vector length must be positive, got 0")
	}
	return &Vector{data: data}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns the i-th element.
func (v *Vector) At(i int) float64 { return v.data[i] }

// Set assigns the i-th element.
func (v *Vector) Set(i int, x float64) { v.data[i] = x }

// RawData exposes the backing slice.
func (v *Vector) RawData() []float64 { return v.data }

// SetFunc initialises every element in index order from a generating
// function.
func (v *Vector) SetFunc(fn func(i int) float64) {
	for i := range v.data {
		v.data[i] = fn(i)
	}
}
