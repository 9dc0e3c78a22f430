package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smsguard/spam-classifier/pkg/config"
	"github.com/smsguard/spam-classifier/pkg/dataset"
	"github.com/smsguard/spam-classifier/pkg/model"
	"github.com/smsguard/spam-classifier/pkg/textproc"
)

var (
	trainDataPath  string
	trainModelPath string
	trainConfig    string
	trainBackend   string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a Naive Bayes model from a labeled corpus",
	Long: `Train the Multinomial Naive Bayes model from a CSV corpus of
labeled messages (ham/spam) and store it in the configured backend.

The same corpus, tokenizer settings, and smoothing factor always produce
the same model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(trainConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		if trainDataPath != "" {
			cfg.Dataset.Path = trainDataPath
		}
		if trainModelPath != "" {
			cfg.Model.ModelPath = trainModelPath
		}
		if trainBackend != "" {
			cfg.Model.Backend = trainBackend
		}

		fmt.Printf("🧠 SMSGuard Training\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📁 Corpus: %s\n", cfg.Dataset.Path)
		fmt.Printf("💾 Backend: %s\n", cfg.Model.Backend)
		fmt.Printf("\n")

		start := time.Now()

		messages, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Columns)
		if err != nil {
			return fmt.Errorf("failed to load corpus: %v", err)
		}

		normalizer := textproc.NewNormalizer(&cfg.Tokenizer)
		vocab := model.BuildVocabulary(messages, normalizer, cfg.Performance.Workers)
		trained := model.Estimate(vocab, cfg.Model.SmoothingFactor)

		if err := saveTrainedModel(cfg, trained); err != nil {
			return fmt.Errorf("failed to save model: %v", err)
		}

		duration := time.Since(start)

		fmt.Printf("🎉 Training Complete!\n")
		fmt.Printf("📊 Messages processed: %d (%d ham, %d spam)\n",
			vocab.TotalMessages(), vocab.HamMessages, vocab.SpamMessages)
		fmt.Printf("📖 Vocabulary size: %d tokens\n", vocab.Size())
		fmt.Printf("⏱️  Time taken: %v\n", duration)
		if cfg.Model.Backend == "file" {
			fmt.Printf("💾 Model saved to: %s\n", cfg.Model.ModelPath)
		}

		return nil
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainDataPath, "data", "d", "", "Labeled message CSV file (overrides config)")
	trainCmd.Flags().StringVarP(&trainModelPath, "model", "m", "", "Path to save model (overrides config)")
	trainCmd.Flags().StringVarP(&trainConfig, "config", "c", "", "Configuration file path")
	trainCmd.Flags().StringVarP(&trainBackend, "backend", "b", "", "Model backend: file or redis (overrides config)")
}
