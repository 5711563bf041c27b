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

// Package factor holds the dense row-factor storage shared by the BPR and
// WALS engines: a matrix of per-entity latent factors plus an optional
// per-entity bias.
package factor

import "github.com/gorse-io/gomf/base"

// Data pairs an (n, k) factor Matrix with an optional n-length bias
// Vector. WithBiases is fixed at construction; calling Biases when it is
// false is a programmer error.
type Data struct {
	factors    *base.Matrix
	biases     *base.Vector
	withBiases bool
}

// New allocates zeroed factors for n rows of k dimensions each, and
// zeroed biases iff withBiases.
func New(n, k int, withBiases bool) *Data {
	d := &Data{
		factors:    base.NewMatrix(n, k),
		withBiases: withBiases,
	}
	if withBiases {
		d.biases = base.NewVector(n)
	}
	return d
}

// Rows returns the number of entities (n).
func (d *Data) Rows() int { return d.factors.Rows() }

// Dim returns the factor dimensionality (k).
func (d *Data) Dim() int { return d.factors.Cols() }

// WithBiases reports whether this Data carries a bias term.
func (d *Data) WithBiases() bool { return d.withBiases }

// Factors returns the underlying (n, k) factor matrix.
func (d *Data) Factors() *base.Matrix { return d.factors }

// Row returns the factor row for entity i, as a mutable slice view.
func (d *Data) Row(i int) []float64 { return d.factors.Row(i) }

// Biases returns the underlying bias vector. Fatal if WithBiases is false.
func (d *Data) Biases() *base.Vector {
	if !d.withBiases {
		panicNoBiases()
	}
	return d.biases
}

// Bias returns the bias of entity i. Fatal if WithBiases is false.
func (d *Data) Bias(i int) float64 {
	if !d.withBiases {
		panicNoBiases()
	}
	return d.biases.At(i)
}

// SetBias assigns the bias of entity i. Fatal if WithBiases is false.
func (d *Data) SetBias(i int, v float64) {
	if !d.withBiases {
		panicNoBiases()
	}
	d.biases.Set(i, v)
}

// SetFactors initialises every factor in (row, col) order from fn,
// typically a random-number generator or a zeroing function.
func (d *Data) SetFactors(fn func(row, col int) float64) {
	d.factors.SetFunc(fn)
}

// SetBiases initialises every bias in row order from fn. Fatal if
// WithBiases is false.
func (d *Data) SetBiases(fn func(row int) float64) {
	if !d.withBiases {
		panicNoBiases()
	}
	d.biases.SetFunc(fn)
}
