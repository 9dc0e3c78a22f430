package textproc

import "strings"

// defaultStopwords is a fixed English stopword list. It only affects the
// descriptive word-frequency side channel, never the classifier's input.
var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can't",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having",
	"he", "he'd", "he'll", "he's", "her", "here", "here's", "hers",
	"herself", "him", "himself", "his", "how", "how's", "i", "i'd", "i'll",
	"i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's", "its",
	"itself", "let's", "me", "more", "most", "mustn't", "my", "myself",
	"no", "nor", "not", "of", "off", "on", "once", "only", "or", "other",
	"ought", "our", "ours", "ourselves", "out", "over", "own", "same",
	"shan't", "she", "she'd", "she'll", "she's", "should", "shouldn't",
	"so", "some", "such", "than", "that", "that's", "the", "their",
	"theirs", "them", "themselves", "then", "there", "there's", "these",
	"they", "they'd", "they'll", "they're", "they've", "this", "those",
	"through", "to", "too", "under", "until", "up", "very", "was", "wasn't",
	"we", "we'd", "we'll", "we're", "we've", "were", "weren't", "what",
	"what's", "when", "when's", "where", "where's", "which", "while", "who",
	"who's", "whom", "why", "why's", "with", "won't", "would", "wouldn't",
	"you", "you'd", "you'll", "you're", "you've", "your", "yours",
	"yourself", "yourselves",
}

// StopwordFilter removes stopwords from raw whitespace-split text. It runs
// before any alphanumeric stripping, on the words as they appear in the
// message; a word with punctuation attached ("the,") is not a match. This
// stage feeds word-frequency inspection only. The classifier pipeline
// deliberately tokenizes the original, unfiltered text: removing stopwords
// from the model's training input would change classification behavior.
type StopwordFilter struct {
	stopwords map[string]struct{}
}

// NewStopwordFilter creates a filter over the default English stopword list
func NewStopwordFilter() *StopwordFilter {
	return NewStopwordFilterWithList(defaultStopwords)
}

// NewStopwordFilterWithList creates a filter over a custom word list
func NewStopwordFilterWithList(words []string) *StopwordFilter {
	stops := make(map[string]struct{}, len(words))
	for _, w := range words {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &StopwordFilter{stopwords: stops}
}

// IsStopword reports whether a single word is in the stopword set
func (sf *StopwordFilter) IsStopword(word string) bool {
	_, ok := sf.stopwords[strings.ToLower(word)]
	return ok
}

// Filter splits text on whitespace, drops stopwords, and rejoins the
// surviving words with single spaces
func (sf *StopwordFilter) Filter(text string) string {
	words := strings.Fields(text)
	kept := make([]string, 0, len(words))

	for _, word := range words {
		if sf.IsStopword(word) {
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}
