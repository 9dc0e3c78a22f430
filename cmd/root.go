package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smsguard",
	Short: "SMSGuard - Naive Bayes SMS spam classifier",
	Long: `SMSGuard classifies short text messages as spam or ham using a
Multinomial Naive Bayes model trained from labeled examples.

Train a model from a labeled CSV corpus, then classify new messages
against the stored model.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("SMSGuard - SMS Spam Classifier")
		fmt.Println("Use 'smsguard --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(configCmd)
}
