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

// Command wals-train fits a Weighted Alternating Least Squares model on
// a plain-text interaction dataset and writes the trained factors.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gorse-io/gomf/base/log"
	"github.com/gorse-io/gomf/dataset"
	"github.com/gorse-io/gomf/metric"
	"github.com/gorse-io/gomf/wals"
)

var rootCommand = &cobra.Command{
	Use:   "wals-train",
	Short: "Train a WALS model on a plain-text interaction dataset",
	Run:   run,
}

func init() {
	flags := rootCommand.Flags()
	cfg := wals.DefaultConfig()

	flags.Uint64("nepochs", uint64(cfg.Nepochs), "number of training epochs")
	flags.Uint64("nfactors", uint64(cfg.Nfactors), "number of latent factors")
	flags.Float64("regularization_lambda", cfg.RegularizationLambda, "ridge-regression L2 regularisation")
	flags.Float64("confidence_weight", cfg.ConfidenceWeight, "Hu-Koren-Volinsky confidence weight (alpha)")
	flags.Float64("init_distribution_bound", cfg.InitDistributionBound, "uniform item-factor init bound")
	flags.Uint64("nthreads", uint64(cfg.Nthreads), "worker pool size / row-partition count")
	flags.Int64("seed", cfg.Seed, "seed for item-factor initialisation")
	flags.String("train_dataset", "", "path to the training dataset")
	flags.String("test_dataset", "", "path to the test dataset")
	flags.String("test_avg_metrics", "", "comma-separated averaged test metrics to report (e.g. auc,p@10)")
	flags.Uint64("num_test_users", 0, "subsample this many test users (0 = all)")
	flags.Bool("test_always", false, "compute averaged test metrics every epoch, not just the last")
	flags.Int32("eval_seed", 42, "seed for test-user subsampling")
	flags.String("user_factors", "", "output path for trained user factors")
	flags.String("item_factors", "", "output path for trained item factors")
	flags.Bool("debug", false, "enable verbose console logging")
	log.AddFlags(flags)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) {
	flags := cmd.Flags()
	debug, _ := flags.GetBool("debug")
	log.SetLogger(flags, debug)
	defer log.CloseLogger()

	cfg := walsConfigFromFlags(flags)
	e := wals.NewEngine(cfg)
	defer e.Close()

	trainPath, _ := flags.GetString("train_dataset")
	trainFile, err := os.Open(trainPath)
	if err != nil {
		log.Logger().Fatal("failed to open training dataset", zap.String("path", trainPath), zap.Error(err))
	}
	trainData := dataset.ReadTriples(trainFile)
	trainFile.Close()

	evalSeed, _ := flags.GetInt32("eval_seed")
	e.Metrics = metricsEngineFromFlags(flags, evalSeed)
	e.Init(trainData)

	testPath, _ := flags.GetString("test_dataset")
	if testPath != "" {
		testFile, err := os.Open(testPath)
		if err != nil {
			log.Logger().Fatal("failed to open test dataset", zap.String("path", testPath), zap.Error(err))
		}
		testData := dataset.ReadTriples(testFile)
		testFile.Close()
		e.InitTest(testData)
	}

	e.Optimize()

	writeUserFactors(flags, e)
	writeItemFactors(flags, e)
}

func walsConfigFromFlags(flags *pflag.FlagSet) wals.Config {
	cfg := wals.DefaultConfig()
	cfg.Nepochs = mustGetInt(flags, "nepochs")
	cfg.Nfactors = mustGetInt(flags, "nfactors")
	cfg.RegularizationLambda = mustGetFloat(flags, "regularization_lambda")
	cfg.ConfidenceWeight = mustGetFloat(flags, "confidence_weight")
	cfg.InitDistributionBound = mustGetFloat(flags, "init_distribution_bound")
	cfg.Nthreads = mustGetInt(flags, "nthreads")
	cfg.Seed, _ = flags.GetInt64("seed")
	return cfg
}

func metricsEngineFromFlags(flags *pflag.FlagSet, seed int32) *metric.Engine {
	numTestUsers := mustGetInt(flags, "num_test_users")
	testAlways, _ := flags.GetBool("test_always")
	eng := metric.NewEngine(metric.EngineConfig{
		NumTestUsers:  numTestUsers,
		AlwaysCompute: testAlways,
		Seed:          seed,
	})
	names, _ := flags.GetString("test_avg_metrics")
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !eng.AddTestAvgMetric(name) {
			log.Logger().Warn("unknown test_avg_metrics entry ignored", zap.String("metric", name))
		}
	}
	return eng
}

func writeUserFactors(flags *pflag.FlagSet, e *wals.Engine) {
	path, _ := flags.GetString("user_factors")
	if path == "" {
		log.Logger().Warn("no output path given, skipping user factor dump")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Logger().Warn("failed to create user factor output file", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()
	if err := dataset.WriteFactors(f, dataset.IdsFromIndex(e.UserIndex()), e.UserFactors()); err != nil {
		log.Logger().Warn("failed to write user factors", zap.Error(err))
	}
}

func writeItemFactors(flags *pflag.FlagSet, e *wals.Engine) {
	path, _ := flags.GetString("item_factors")
	if path == "" {
		log.Logger().Warn("no output path given, skipping item factor dump")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Logger().Warn("failed to create item factor output file", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()
	if err := dataset.WriteFactors(f, dataset.IdsFromIndex(e.ItemIndex()), e.ItemFactors()); err != nil {
		log.Logger().Warn("failed to write item factors", zap.Error(err))
	}
}

func mustGetInt(flags *pflag.FlagSet, name string) int {
	v, _ := flags.GetUint64(name)
	return int(v)
}

func mustGetFloat(flags *pflag.FlagSet, name string) float64 {
	v, _ := flags.GetFloat64(name)
	return v
}
