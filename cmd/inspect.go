package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smsguard/spam-classifier/pkg/config"
)

var (
	inspectConfig string
	inspectModel  string
	inspectLimit  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show statistics for the stored model",
	Long:  `Print vocabulary size, class priors, and the most spam- and ham-indicative tokens of the stored model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(inspectConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if inspectModel != "" {
			cfg.Model.ModelPath = inspectModel
		}

		trained, _, err := loadTrainedModel(cfg)
		if err != nil {
			return fmt.Errorf("failed to load model: %v", err)
		}

		vocab := trained.Vocab

		fmt.Printf("🧠 SMSGuard Model\n")
		fmt.Printf("════════════════════════════════════════\n")
		fmt.Printf("Training data:\n")
		fmt.Printf("  Ham messages:  %d\n", vocab.HamMessages)
		fmt.Printf("  Spam messages: %d\n", vocab.SpamMessages)
		fmt.Printf("  Ham tokens:    %d\n", vocab.HamTokens)
		fmt.Printf("  Spam tokens:   %d\n", vocab.SpamTokens)
		fmt.Printf("  Vocabulary:    %d tokens\n", vocab.Size())
		fmt.Printf("\nModel:\n")
		fmt.Printf("  Priors: ham %.4f / spam %.4f\n", trained.HamPrior, trained.SpamPrior)
		fmt.Printf("  Smoothing factor: %.2f\n", trained.Smoothing)

		fmt.Printf("\n📈 Top Spam Tokens:\n")
		for i, ts := range vocab.TopSpamTokens(inspectLimit) {
			fmt.Printf("  %2d. %-15s (%.3f spamminess, %d/%d)\n",
				i+1, ts.Token, ts.Spamminess, ts.SpamCount, ts.HamCount)
		}

		fmt.Printf("\n📉 Top Ham Tokens:\n")
		for i, ts := range vocab.TopHamTokens(inspectLimit) {
			fmt.Printf("  %2d. %-15s (%.3f spamminess, %d/%d)\n",
				i+1, ts.Token, ts.Spamminess, ts.SpamCount, ts.HamCount)
		}

		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectConfig, "config", "c", "", "Configuration file path")
	inspectCmd.Flags().StringVarP(&inspectModel, "model", "m", "", "Model file path (overrides config)")
	inspectCmd.Flags().IntVarP(&inspectLimit, "limit", "n", 10, "Number of tokens to show per class")
}
