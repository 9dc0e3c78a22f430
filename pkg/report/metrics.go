package report

import (
	"fmt"
	"io"

	"github.com/smsguard/spam-classifier/pkg/model"
)

// ConfusionMatrix tallies test predictions against true labels, with spam
// as the positive class. Unknown predictions are counted separately; they
// are a valid outcome, not an error, but they are never correct.
type ConfusionMatrix struct {
	TruePositives  int `json:"true_positives"`  // spam predicted spam
	TrueNegatives  int `json:"true_negatives"`  // ham predicted ham
	FalsePositives int `json:"false_positives"` // ham predicted spam
	FalseNegatives int `json:"false_negatives"` // spam predicted ham
	Unknown        int `json:"unknown"`
}

// EvalResult summarizes a model's performance on a labeled test set
type EvalResult struct {
	Matrix   ConfusionMatrix `json:"matrix"`
	Total    int             `json:"total"`
	Correct  int             `json:"correct"`
	Accuracy float64         `json:"accuracy"`
}

// Evaluate compares predictions with their true labels
func Evaluate(labels []model.Label, predictions []model.Prediction) (*EvalResult, error) {
	if len(labels) != len(predictions) {
		return nil, fmt.Errorf("label/prediction count mismatch: %d vs %d", len(labels), len(predictions))
	}

	result := &EvalResult{Total: len(labels)}

	for i, label := range labels {
		switch predictions[i].Label {
		case model.Spam:
			if label == model.Spam {
				result.Matrix.TruePositives++
			} else {
				result.Matrix.FalsePositives++
			}
		case model.Ham:
			if label == model.Ham {
				result.Matrix.TrueNegatives++
			} else {
				result.Matrix.FalseNegatives++
			}
		default:
			result.Matrix.Unknown++
		}
	}

	result.Correct = result.Matrix.TruePositives + result.Matrix.TrueNegatives
	if result.Total > 0 {
		result.Accuracy = float64(result.Correct) / float64(result.Total)
	}

	return result, nil
}

// Print writes a human-readable evaluation summary
func (r *EvalResult) Print(w io.Writer) {
	fmt.Fprintf(w, "📊 Evaluation Results\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "Messages tested: %d\n", r.Total)
	fmt.Fprintf(w, "Accuracy: %.2f%% (%d/%d)\n", r.Accuracy*100, r.Correct, r.Total)
	fmt.Fprintf(w, "\nConfusion matrix (spam = positive):\n")
	fmt.Fprintf(w, "  True positives:  %d\n", r.Matrix.TruePositives)
	fmt.Fprintf(w, "  True negatives:  %d\n", r.Matrix.TrueNegatives)
	fmt.Fprintf(w, "  False positives: %d\n", r.Matrix.FalsePositives)
	fmt.Fprintf(w, "  False negatives: %d\n", r.Matrix.FalseNegatives)
	fmt.Fprintf(w, "  Unknown:         %d\n", r.Matrix.Unknown)
}
