package model

import (
	"math"

	"github.com/smsguard/spam-classifier/pkg/textproc"
)

// Prediction is the classification outcome for one message. Scores are
// log-space posteriors; they are only meaningful relative to each other.
type Prediction struct {
	Label        Label   `json:"label"`
	HamScore     float64 `json:"ham_score"`
	SpamScore    float64 `json:"spam_score"`
	TokensScored int     `json:"tokens_scored"`
}

// Classifier applies a trained model to raw message text. The model is
// read-only after training, so a single Classifier is safe for concurrent
// use.
type Classifier struct {
	model      *Model
	normalizer *textproc.Normalizer
}

// NewClassifier pairs a trained model with the normalizer whose token
// conventions it was trained under
func NewClassifier(m *Model, normalizer *textproc.Normalizer) *Classifier {
	return &Classifier{model: m, normalizer: normalizer}
}

// Model returns the underlying trained model
func (c *Classifier) Model() *Model {
	return c.model
}

// Classify tokenizes text and scores it against both classes.
//
// Scoring runs in log space: log(prior) plus the sum of log P(t|c) over the
// message's in-vocabulary tokens. Summing logs preserves the ordering of
// the raw probability products while avoiding underflow on long messages.
// Tokens absent from the vocabulary are skipped entirely; they contribute
// no mass to either class. A message with zero in-vocabulary tokens
// classifies as Unknown, as does an exact tie.
func (c *Classifier) Classify(text string) Prediction {
	tokens := c.normalizer.Tokenize(text)

	hamScore := math.Log(c.model.HamPrior)
	spamScore := math.Log(c.model.SpamPrior)

	scored := 0
	for _, token := range tokens {
		probs, ok := c.model.Probs[token]
		if !ok {
			continue
		}
		hamScore += math.Log(probs.Ham)
		spamScore += math.Log(probs.Spam)
		scored++
	}

	pred := Prediction{
		HamScore:     hamScore,
		SpamScore:    spamScore,
		TokensScored: scored,
	}

	switch {
	case scored == 0:
		pred.Label = Unknown
	case hamScore > spamScore:
		pred.Label = Ham
	case hamScore < spamScore:
		pred.Label = Spam
	default:
		pred.Label = Unknown
	}

	return pred
}
