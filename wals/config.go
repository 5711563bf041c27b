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

// Package wals implements Weighted Alternating Least Squares for
// implicit feedback: alternating closed-form per-row solves against a
// fixed opposite factor matrix, using the Hu-Koren-Volinsky confidence
// weighting c = 1 + alpha*v.
package wals

// Config holds every WALS hyperparameter and runtime knob recognised by
// the wals-train CLI front-end.
type Config struct {
	Nepochs               int
	Nfactors              int
	RegularizationLambda  float64
	ConfidenceWeight      float64
	InitDistributionBound float64
	Nthreads              int
	Seed                  int64
}

// DefaultConfig returns the CLI's documented defaults.
func DefaultConfig() Config {
	return Config{
		Nepochs:               10,
		Nfactors:              30,
		RegularizationLambda:  0.05,
		ConfidenceWeight:      40,
		InitDistributionBound: 0.01,
		Nthreads:              16,
		Seed:                  42,
	}
}
