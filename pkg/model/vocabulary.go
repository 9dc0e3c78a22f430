package model

import (
	"sort"
	"sync"

	"github.com/smsguard/spam-classifier/pkg/textproc"
)

// Label identifies a message class
type Label string

const (
	Ham     Label = "ham"
	Spam    Label = "spam"
	Unknown Label = "unknown"
)

// TrainingMessage is one labeled message from the training split
type TrainingMessage struct {
	Label Label
	Text  string
}

// WordCounts holds per-class occurrence counts for one token
type WordCounts struct {
	Ham  int `json:"ham"`
	Spam int `json:"spam"`
}

// Vocabulary accumulates per-class token counts over a training corpus.
// Every token observed in any training message has an entry; a token never
// seen in a class carries count 0 for that class. Token totals count
// repeats, so they are the sum of token-sequence lengths per class.
type Vocabulary struct {
	Words map[string]*WordCounts `json:"words"`

	HamTokens  int `json:"ham_tokens"`
	SpamTokens int `json:"spam_tokens"`

	HamMessages  int `json:"ham_messages"`
	SpamMessages int `json:"spam_messages"`
}

// NewVocabulary creates an empty vocabulary
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		Words: make(map[string]*WordCounts),
	}
}

// AddMessage accumulates one message's token sequence under its label.
// Messages with unknown labels are ignored; the loader rejects them before
// training, so this is a safety net, not an error path.
func (v *Vocabulary) AddMessage(label Label, tokens []string) {
	switch label {
	case Ham:
		v.HamMessages++
		for _, token := range tokens {
			v.counts(token).Ham++
			v.HamTokens++
		}
	case Spam:
		v.SpamMessages++
		for _, token := range tokens {
			v.counts(token).Spam++
			v.SpamTokens++
		}
	}
}

func (v *Vocabulary) counts(token string) *WordCounts {
	wc, ok := v.Words[token]
	if !ok {
		wc = &WordCounts{}
		v.Words[token] = wc
	}
	return wc
}

// Merge folds another vocabulary into this one by summing counts. Count
// summation is commutative and associative, so partial vocabularies built
// from disjoint message subsets merge into the same result as a single-pass
// build over the combined set.
func (v *Vocabulary) Merge(other *Vocabulary) {
	for token, wc := range other.Words {
		dst := v.counts(token)
		dst.Ham += wc.Ham
		dst.Spam += wc.Spam
	}
	v.HamTokens += other.HamTokens
	v.SpamTokens += other.SpamTokens
	v.HamMessages += other.HamMessages
	v.SpamMessages += other.SpamMessages
}

// Size returns the number of distinct tokens
func (v *Vocabulary) Size() int {
	return len(v.Words)
}

// TotalMessages returns the number of training messages accumulated
func (v *Vocabulary) TotalMessages() int {
	return v.HamMessages + v.SpamMessages
}

// BuildVocabulary tokenizes every training message and accumulates a
// vocabulary. With workers > 1 the corpus is fanned out to a worker pool,
// each worker building a partial vocabulary that is merged at the end;
// per-message accumulation is independent, so the result is identical to a
// serial build.
func BuildVocabulary(messages []TrainingMessage, normalizer *textproc.Normalizer, workers int) *Vocabulary {
	if workers <= 1 || len(messages) < 2 {
		vocab := NewVocabulary()
		for _, msg := range messages {
			vocab.AddMessage(msg.Label, normalizer.Tokenize(msg.Text))
		}
		return vocab
	}

	jobs := make(chan TrainingMessage, len(messages))
	partials := make([]*Vocabulary, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			partial := NewVocabulary()
			for msg := range jobs {
				partial.AddMessage(msg.Label, normalizer.Tokenize(msg.Text))
			}
			partials[workerID] = partial
		}(i)
	}

	for _, msg := range messages {
		jobs <- msg
	}
	close(jobs)
	wg.Wait()

	vocab := NewVocabulary()
	for _, partial := range partials {
		vocab.Merge(partial)
	}
	return vocab
}

// TokenStats describes one token's training counts and how strongly it
// leans toward spam (0 = pure ham, 1 = pure spam)
type TokenStats struct {
	Token      string  `json:"token"`
	HamCount   int     `json:"ham_count"`
	SpamCount  int     `json:"spam_count"`
	Spamminess float64 `json:"spamminess"`
}

// TopSpamTokens returns the tokens most indicative of spam, by spamminess
func (v *Vocabulary) TopSpamTokens(limit int) []TokenStats {
	stats := v.tokenStats()
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Spamminess != stats[j].Spamminess {
			return stats[i].Spamminess > stats[j].Spamminess
		}
		return stats[i].Token < stats[j].Token
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// TopHamTokens returns the tokens most indicative of ham, by spamminess
func (v *Vocabulary) TopHamTokens(limit int) []TokenStats {
	stats := v.tokenStats()
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Spamminess != stats[j].Spamminess {
			return stats[i].Spamminess < stats[j].Spamminess
		}
		return stats[i].Token < stats[j].Token
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

func (v *Vocabulary) tokenStats() []TokenStats {
	stats := make([]TokenStats, 0, len(v.Words))

	for token, wc := range v.Words {
		var hamRate, spamRate float64
		if v.HamTokens > 0 {
			hamRate = float64(wc.Ham) / float64(v.HamTokens)
		}
		if v.SpamTokens > 0 {
			spamRate = float64(wc.Spam) / float64(v.SpamTokens)
		}

		var spamminess float64
		if hamRate+spamRate > 0 {
			spamminess = spamRate / (hamRate + spamRate)
		}

		stats = append(stats, TokenStats{
			Token:      token,
			HamCount:   wc.Ham,
			SpamCount:  wc.Spam,
			Spamminess: spamminess,
		})
	}

	return stats
}
