package report

import (
	"sort"
	"strings"

	"github.com/smsguard/spam-classifier/pkg/model"
	"github.com/smsguard/spam-classifier/pkg/textproc"
)

// WordFrequency is one entry of a descriptive word-frequency report
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords counts word frequencies for one class over the stopword-filtered
// copy of each message and returns the most frequent words.
//
// This is the inspection side channel: messages are whitespace-split and
// stopword-filtered as raw text, a separate path from the classifier's
// tokenizer. The probability model never sees stopword-filtered input; the
// two stages diverge on purpose and must stay divergent to reproduce the
// classifier's behavior.
func TopWords(messages []model.TrainingMessage, label model.Label, filter *textproc.StopwordFilter, limit int) []WordFrequency {
	counts := make(map[string]int)

	for _, msg := range messages {
		if msg.Label != label {
			continue
		}
		filtered := filter.Filter(msg.Text)
		for _, word := range strings.Fields(filtered) {
			counts[strings.ToLower(word)]++
		}
	}

	freqs := make([]WordFrequency, 0, len(counts))
	for word, count := range counts {
		freqs = append(freqs, WordFrequency{Word: word, Count: count})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})

	if limit > 0 && len(freqs) > limit {
		freqs = freqs[:limit]
	}

	return freqs
}
