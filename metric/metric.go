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

// Package metric implements the per-user ranking/regression metrics used
// to report training and test quality, and a name-based registry so a
// metric can be selected at runtime from a CLI flag (e.g. "p@5").
package metric

import (
	"sort"

	"github.com/gorse-io/gomf/base/fatal"
	"go.uber.org/zap"

	"github.com/gorse-io/gomf/base/log"
	"github.com/gorse-io/gomf/base/parallel"
)

// Metric scores one user's ranked list of items: labels[i] is the
// ground-truth relevance (>0 means relevant) and scores[i] is the model's
// predicted score, for matching items i.
type Metric interface {
	// Compute returns this metric's value for one user's matched
	// labels/scores.
	Compute(labels, scores []float64) float64
}

// Average returns the arithmetic mean of m applied to each row of
// labels/scores (one row per user).
func Average(m Metric, labels, scores [][]float64) float64 {
	if len(labels) == 0 {
		return 0
	}
	var sum float64
	for i := range labels {
		sum += m.Compute(labels[i], scores[i])
	}
	return sum / float64(len(labels))
}

// AverageParallel is Average, computed with a ParallelExecutor using
// block partitioning over the per-user rows; the rows MapReduceSlice
// leaves outside its blocks are added in sequentially.
func AverageParallel(m Metric, labels, scores [][]float64, e *parallel.ParallelExecutor) float64 {
	if len(labels) == 0 {
		return 0
	}
	type indexed struct {
		labels, scores []float64
	}
	rows := make([]indexed, len(labels))
	for i := range labels {
		rows[i] = indexed{labels[i], scores[i]}
	}
	sum := parallel.MapReduceSlice(e, rows, 0.0, func(r indexed) float64 {
		return m.Compute(r.labels, r.scores)
	}, func(acc, x float64) float64 {
		return acc + x
	})
	for _, r := range rows[len(rows)/e.N()*e.N():] {
		sum += m.Compute(r.labels, r.scores)
	}
	return sum / float64(len(labels))
}

// rankedItem pairs a label with its score, for sort-by-score metrics.
type rankedItem struct {
	label float64
	score float64
}

func sortByScoreDesc(labels, scores []float64) []rankedItem {
	items := make([]rankedItem, len(labels))
	for i := range labels {
		items[i] = rankedItem{label: labels[i], score: scores[i]}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
	return items
}

// MSE is the mean squared error between labels and scores.
type MSE struct{}

func (MSE) Compute(labels, scores []float64) float64 {
	if len(labels) == 0 {
		fatal.Check("MSE: empty input")
	}
	var sum float64
	for i := range labels {
		diff := labels[i] - scores[i]
		sum += diff * diff
	}
	return sum / float64(len(labels))
}

// AUC is the area under the ROC curve.
type AUC struct{}

func (AUC) Compute(labels, scores []float64) float64 {
	items := sortByScoreDesc(labels, scores)
	var pos, neg int
	for _, it := range items {
		if it.label > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		log.Logger().Error("AUC: degenerate label vector, returning 1.0", zap.Int("positives", pos), zap.Int("negatives", neg))
		return 1.0
	}
	var sum float64
	var tp int
	for _, it := range items {
		if it.label > 0 {
			tp++
		} else {
			sum += float64(tp) / float64(pos*neg)
		}
	}
	return sum
}

// PrecisionAtK is precision restricted to the top-k scored items.
type PrecisionAtK struct {
	K int
}

func (m PrecisionAtK) Compute(labels, scores []float64) float64 {
	if len(labels) < m.K {
		fatal.Check("Precision@%d: only %d items available", m.K, len(labels))
	}
	items := sortByScoreDesc(labels, scores)
	var hits int
	for i := 0; i < m.K; i++ {
		if items[i].label > 0 {
			hits++
		}
	}
	return float64(hits) / float64(m.K)
}

// RecallAtK is recall restricted to the top-k scored items.
type RecallAtK struct {
	K int
}

func (m RecallAtK) Compute(labels, scores []float64) float64 {
	var totalPos int
	for _, l := range labels {
		if l > 0 {
			totalPos++
		}
	}
	if totalPos == 0 {
		fatal.Check("Recall@%d: no positive labels", m.K)
	}
	if len(labels) < m.K {
		fatal.Check("Recall@%d: only %d items available", m.K, len(labels))
	}
	items := sortByScoreDesc(labels, scores)
	var hits int
	for i := 0; i < m.K; i++ {
		if items[i].label > 0 {
			hits++
		}
	}
	return float64(hits) / float64(totalPos)
}

// AveragePrecision is the average precision over the full ranked list.
type AveragePrecision struct{}

func (AveragePrecision) Compute(labels, scores []float64) float64 {
	items := sortByScoreDesc(labels, scores)
	var totalPos int
	for _, l := range labels {
		if l > 0 {
			totalPos++
		}
	}
	if totalPos == 0 {
		fatal.Check("AveragePrecision: no positive labels")
	}
	var sum float64
	var positivesSoFar int
	for i, it := range items {
		if it.label > 0 {
			positivesSoFar++
			sum += float64(positivesSoFar) / float64(i+1)
		}
	}
	return sum / float64(totalPos)
}
