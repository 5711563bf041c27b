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

// Package bpr implements Bayesian Personalised Ranking: pairwise SGD on
// (user, positive-item, negative-item) triplets, with an optional
// lock-free "Hogwild" parallel mode.
package bpr

// Config holds every BPR hyperparameter and runtime knob recognised by
// the bpr-train CLI front-end.
type Config struct {
	Nepochs               int
	Nfactors              int
	InitLearningRate      float64
	BiasLambda            float64
	UserLambda            float64
	ItemLambda            float64
	DecayRate             float64
	UseBiases             bool
	InitDistributionBound float64
	NumNegativeSamples    int
	NumHogwildThreads     int
	ShuffleTrainingSet    bool
	EvalNumNeg            int
	EvalSeed              int32
	Nthreads              int
}

// DefaultConfig returns the CLI's documented defaults.
func DefaultConfig() Config {
	return Config{
		Nepochs:               10,
		Nfactors:              30,
		InitLearningRate:      0.05,
		BiasLambda:            1.0,
		UserLambda:            0.025,
		ItemLambda:            0.0025,
		DecayRate:             0.9,
		UseBiases:             false,
		InitDistributionBound: 0.01,
		NumNegativeSamples:    3,
		NumHogwildThreads:     1,
		ShuffleTrainingSet:    true,
		EvalNumNeg:            3,
		EvalSeed:              42,
		Nthreads:              16,
	}
}
