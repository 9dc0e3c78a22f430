package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smsguard/spam-classifier/pkg/config"
	"github.com/smsguard/spam-classifier/pkg/model"
	"github.com/smsguard/spam-classifier/pkg/textproc"
)

var (
	classifyConfig string
	classifyModel  string
	classifyStdin  bool
	classifyScores bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [message]",
	Short: "Classify a message against the trained model",
	Long: `Classify a message as ham, spam, or unknown using the stored model.

Pass the message as an argument, or --stdin to classify one message per
input line. Messages with no token seen during training classify as
unknown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !classifyStdin {
			return fmt.Errorf("provide a message argument or --stdin")
		}

		cfg, err := config.LoadConfig(classifyConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}
		if classifyModel != "" {
			cfg.Model.ModelPath = classifyModel
		}

		trained, normCfg, err := loadTrainedModel(cfg)
		if err != nil {
			return fmt.Errorf("failed to load model: %v", err)
		}

		classifier := model.NewClassifier(trained, textproc.NewNormalizer(normCfg))

		if classifyStdin {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}
				printPrediction(line, classifier.Classify(line))
			}
			return scanner.Err()
		}

		printPrediction(args[0], classifier.Classify(args[0]))
		return nil
	},
}

func printPrediction(text string, pred model.Prediction) {
	if classifyScores {
		fmt.Printf("%s\tham=%.4f spam=%.4f tokens=%d\t%s\n",
			pred.Label, pred.HamScore, pred.SpamScore, pred.TokensScored, text)
		return
	}
	fmt.Printf("%s\t%s\n", pred.Label, text)
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyConfig, "config", "c", "", "Configuration file path")
	classifyCmd.Flags().StringVarP(&classifyModel, "model", "m", "", "Model file path (overrides config)")
	classifyCmd.Flags().BoolVar(&classifyStdin, "stdin", false, "Classify one message per stdin line")
	classifyCmd.Flags().BoolVar(&classifyScores, "scores", false, "Print log-space scores")
}
