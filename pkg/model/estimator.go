package model

// TokenProbs holds the smoothed conditional probabilities for one token
type TokenProbs struct {
	Ham  float64 `json:"ham"`
	Spam float64 `json:"spam"`
}

// Model is the trained classifier state: the smoothed probability table,
// the class priors, and the vocabulary it was estimated from. A Model is
// built once per training run and never mutated afterward, so concurrent
// classification needs no locking.
type Model struct {
	Probs     map[string]TokenProbs
	HamPrior  float64
	SpamPrior float64
	Smoothing float64
	Vocab     *Vocabulary
}

// DefaultSmoothing is Laplace add-one smoothing
const DefaultSmoothing = 1.0

// Estimate converts raw vocabulary counts into a trained model.
//
// Per token t and class c: P(t|c) = (count(t,c) + smooth) / (total(c) +
// smooth*V), where V is the distinct token count. Smoothing keeps every
// probability strictly positive, including for tokens seen in only one
// class. Priors are the empirical message-label fractions, unsmoothed.
func Estimate(vocab *Vocabulary, smoothing float64) *Model {
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}

	v := float64(vocab.Size())
	hamDenom := float64(vocab.HamTokens) + smoothing*v
	spamDenom := float64(vocab.SpamTokens) + smoothing*v

	probs := make(map[string]TokenProbs, vocab.Size())
	for token, wc := range vocab.Words {
		probs[token] = TokenProbs{
			Ham:  (float64(wc.Ham) + smoothing) / hamDenom,
			Spam: (float64(wc.Spam) + smoothing) / spamDenom,
		}
	}

	hamPrior, spamPrior := 0.5, 0.5
	if total := vocab.TotalMessages(); total > 0 {
		hamPrior = float64(vocab.HamMessages) / float64(total)
		spamPrior = float64(vocab.SpamMessages) / float64(total)
	}

	return &Model{
		Probs:     probs,
		HamPrior:  hamPrior,
		SpamPrior: spamPrior,
		Smoothing: smoothing,
		Vocab:     vocab,
	}
}
