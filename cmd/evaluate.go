package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smsguard/spam-classifier/pkg/config"
	"github.com/smsguard/spam-classifier/pkg/dataset"
	"github.com/smsguard/spam-classifier/pkg/model"
	"github.com/smsguard/spam-classifier/pkg/report"
	"github.com/smsguard/spam-classifier/pkg/textproc"
)

var (
	evaluateDataPath string
	evaluateConfig   string
	evaluateFraction float64
	evaluateSeed     int64
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Train on a stratified split and report test accuracy",
	Long: `Split the corpus into stratified train and test partitions, train a
model on the training partition, classify the held-out messages, and
report accuracy and the confusion matrix.

The split is seeded, so the same corpus, seed, and settings reproduce the
same numbers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(evaluateConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		if evaluateDataPath != "" {
			cfg.Dataset.Path = evaluateDataPath
		}
		if cmd.Flags().Changed("test-fraction") {
			cfg.Dataset.TestFraction = evaluateFraction
		}
		if cmd.Flags().Changed("seed") {
			cfg.Dataset.Seed = evaluateSeed
		}

		messages, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Columns)
		if err != nil {
			return fmt.Errorf("failed to load corpus: %v", err)
		}

		train, test := dataset.StratifiedSplit(messages, cfg.Dataset.TestFraction, cfg.Dataset.Seed)
		if len(test) == 0 {
			return fmt.Errorf("test partition is empty, increase test_fraction")
		}

		fmt.Printf("🔬 SMSGuard Evaluation\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📁 Corpus: %s (%d messages)\n", cfg.Dataset.Path, len(messages))
		fmt.Printf("✂️  Split: %d train / %d test (fraction %.2f, seed %d)\n",
			len(train), len(test), cfg.Dataset.TestFraction, cfg.Dataset.Seed)
		fmt.Printf("\n")

		start := time.Now()

		normalizer := textproc.NewNormalizer(&cfg.Tokenizer)
		vocab := model.BuildVocabulary(train, normalizer, cfg.Performance.Workers)
		trained := model.Estimate(vocab, cfg.Model.SmoothingFactor)
		classifier := model.NewClassifier(trained, normalizer)

		labels := make([]model.Label, len(test))
		texts := make([]string, len(test))
		for i, msg := range test {
			labels[i] = msg.Label
			texts[i] = msg.Text
		}

		predictions, _ := classifier.ClassifyBatch(texts, cfg.Performance.Workers)

		result, err := report.Evaluate(labels, predictions)
		if err != nil {
			return fmt.Errorf("failed to evaluate predictions: %v", err)
		}

		result.Print(os.Stdout)
		fmt.Printf("\n⏱️  Time taken: %v\n", time.Since(start))

		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateDataPath, "data", "d", "", "Labeled message CSV file (overrides config)")
	evaluateCmd.Flags().StringVarP(&evaluateConfig, "config", "c", "", "Configuration file path")
	evaluateCmd.Flags().Float64VarP(&evaluateFraction, "test-fraction", "t", 0.2, "Held-out test fraction (overrides config)")
	evaluateCmd.Flags().Int64VarP(&evaluateSeed, "seed", "s", 42, "Split seed (overrides config)")
}
