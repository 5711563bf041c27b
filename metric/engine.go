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
	"github.com/gorse-io/gomf/base/parallel"
	"go.uber.org/zap"

	"github.com/gorse-io/gomf/base/log"
)

// EpochValue is one (epoch, value) sample of a named metric time series.
type EpochValue struct {
	Epoch int
	Value float64
}

// EngineConfig holds the options recognised by an Engine.
type EngineConfig struct {
	// NumTestUsers is the number of test users to subsample when
	// computing averaged test metrics; 0 means "all users".
	NumTestUsers int
	// AlwaysCompute, if false, restricts per-epoch metric computation to
	// the final epoch only.
	AlwaysCompute bool
	// Seed seeds the PRNG used to subsample test users.
	Seed int32
}

// Engine tracks which metrics have been requested (by name, split into
// per-example and averaged-over-users groups for train and test) and
// records each metric's value per epoch into a named time series.
type Engine struct {
	Config EngineConfig

	TrainMetrics    []string
	TestMetrics     []string
	TrainAvgMetrics []string
	TestAvgMetrics  []string

	series map[string][]EpochValue
}

// NewEngine creates an Engine with the given configuration.
func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{
		Config: cfg,
		series: make(map[string][]EpochValue),
	}
}

// AddTrainMetric registers name under TrainMetrics iff the registry knows
// it; returns whether it was added.
func (e *Engine) AddTrainMetric(name string) bool {
	return addIfKnown(&e.TrainMetrics, name)
}

// AddTestMetric registers name under TestMetrics iff the registry knows
// it.
func (e *Engine) AddTestMetric(name string) bool {
	return addIfKnown(&e.TestMetrics, name)
}

// AddTrainAvgMetric registers name under TrainAvgMetrics iff the registry
// knows it.
func (e *Engine) AddTrainAvgMetric(name string) bool {
	return addIfKnown(&e.TrainAvgMetrics, name)
}

// AddTestAvgMetric registers name under TestAvgMetrics iff the registry
// knows it.
func (e *Engine) AddTestAvgMetric(name string) bool {
	return addIfKnown(&e.TestAvgMetrics, name)
}

func addIfKnown(list *[]string, name string) bool {
	if !Exists(name) {
		return false
	}
	*list = append(*list, name)
	return true
}

// Series returns the recorded time series for key (e.g. "train_avg_auc").
func (e *Engine) Series(key string) []EpochValue {
	return e.series[key]
}

func (e *Engine) record(prefix, name string, epoch int, value float64) {
	key := prefix + name
	e.series[key] = append(e.series[key], EpochValue{Epoch: epoch, Value: value})
}

// ComputeAndRecordTrainAvg computes every metric in TrainAvgMetrics,
// averaged over the supplied per-user labels/scores, and records each
// under "train_avg_<name>".
func (e *Engine) ComputeAndRecordTrainAvg(epoch int, labels, scores [][]float64, executor *parallel.ParallelExecutor) {
	e.computeAndRecordAvg("train_avg_", e.TrainAvgMetrics, epoch, labels, scores, executor)
}

// ComputeAndRecordTestAvg computes every metric in TestAvgMetrics,
// averaged over the supplied per-user labels/scores, and records each
// under "test_avg_<name>".
func (e *Engine) ComputeAndRecordTestAvg(epoch int, labels, scores [][]float64, executor *parallel.ParallelExecutor) {
	e.computeAndRecordAvg("test_avg_", e.TestAvgMetrics, epoch, labels, scores, executor)
}

func (e *Engine) computeAndRecordAvg(prefix string, names []string, epoch int, labels, scores [][]float64, executor *parallel.ParallelExecutor) {
	if e.Config.NumTestUsers == 0 && len(labels) > 0 {
		log.Logger().Warn("computing averaged metrics over all users, not a subsample", zap.Int("users", len(labels)))
	}
	for _, name := range names {
		m, ok := Get(name)
		if !ok {
			continue
		}
		var value float64
		if executor != nil {
			value = AverageParallel(m, labels, scores, executor)
		} else {
			value = Average(m, labels, scores)
		}
		e.record(prefix, name, epoch, value)
	}
}

// ShouldCompute reports whether per-epoch average metrics should be
// computed for this epoch, given the engine's AlwaysCompute setting.
func (e *Engine) ShouldCompute(epoch, nepochs int) bool {
	return e.Config.AlwaysCompute || epoch == nepochs
}
