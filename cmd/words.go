package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smsguard/spam-classifier/pkg/config"
	"github.com/smsguard/spam-classifier/pkg/dataset"
	"github.com/smsguard/spam-classifier/pkg/model"
	"github.com/smsguard/spam-classifier/pkg/report"
	"github.com/smsguard/spam-classifier/pkg/textproc"
)

var (
	wordsDataPath string
	wordsConfig   string
	wordsLabel    string
	wordsLimit    int
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the most frequent words per class",
	Long: `Report word frequencies per class over the stopword-filtered copy of
each message.

This is a descriptive view of the corpus only. The classifier trains on
the original, unfiltered text; stopword removal never touches the
probability model's input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(wordsConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if wordsDataPath != "" {
			cfg.Dataset.Path = wordsDataPath
		}

		label := model.Label(wordsLabel)
		if label != model.Ham && label != model.Spam {
			return fmt.Errorf("label must be 'ham' or 'spam', got %q", wordsLabel)
		}

		messages, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Columns)
		if err != nil {
			return fmt.Errorf("failed to load corpus: %v", err)
		}

		filter := textproc.NewStopwordFilter()
		freqs := report.TopWords(messages, label, filter, wordsLimit)

		fmt.Printf("🔤 Most frequent %s words (stopwords removed)\n", label)
		fmt.Printf("════════════════════════════════════════\n")
		for i, wf := range freqs {
			fmt.Printf("  %2d. %-20s %d\n", i+1, wf.Word, wf.Count)
		}

		return nil
	},
}

func init() {
	wordsCmd.Flags().StringVarP(&wordsDataPath, "data", "d", "", "Labeled message CSV file (overrides config)")
	wordsCmd.Flags().StringVarP(&wordsConfig, "config", "c", "", "Configuration file path")
	wordsCmd.Flags().StringVarP(&wordsLabel, "label", "l", "spam", "Class to report: ham or spam")
	wordsCmd.Flags().IntVarP(&wordsLimit, "limit", "n", 20, "Number of words to show")
}
