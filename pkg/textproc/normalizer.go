package textproc

import (
	"strings"
	"unicode"
)

// Sentinel tokens substituted for URL-like and long numeric words
const (
	URLToken        = "_url_"
	LongNumberToken = "_longnum_"
)

// NormalizerConfig holds tokenizer settings
type NormalizerConfig struct {
	// Tokens shorter than this are dropped
	MinTokenLength int `json:"min_token_length" yaml:"min_token_length"`

	// All-digit tokens with at least this many digits become LongNumberToken
	LongNumberDigits int `json:"long_number_digits" yaml:"long_number_digits"`
}

// DefaultNormalizerConfig returns default tokenizer settings
func DefaultNormalizerConfig() *NormalizerConfig {
	return &NormalizerConfig{
		MinTokenLength:   2,
		LongNumberDigits: 7,
	}
}

// Normalizer converts raw message text into the token sequence consumed by
// the probability model. The same normalizer must be used for training and
// classification, otherwise token lookups will miss.
type Normalizer struct {
	config *NormalizerConfig
}

// NewNormalizer creates a normalizer with the given settings
func NewNormalizer(config *NormalizerConfig) *Normalizer {
	if config == nil {
		config = DefaultNormalizerConfig()
	}
	return &Normalizer{config: config}
}

// Config returns the normalizer settings
func (n *Normalizer) Config() *NormalizerConfig {
	return n.config
}

// Tokenize cleans text into an ordered token sequence. Cleaning steps, in
// order: strip every character that is not alphanumeric or a space,
// lowercase, substitute URL and long-number sentinels, split on whitespace,
// drop short tokens. Text that cleans down to nothing yields an empty slice.
func (n *Normalizer) Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, text)

	fields := strings.Fields(cleaned)

	var tokens []string
	for _, word := range fields {
		word = n.substitute(word)
		if len(word) < n.config.MinTokenLength {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// substitute maps URL-like and long numeric words to their sentinels.
// Punctuation is already stripped at this point, so "http://x.com" arrives
// as "httpxcom" and "www.example.com" as "wwwexamplecom"; prefix matching
// is what identifies them.
func (n *Normalizer) substitute(word string) string {
	if strings.HasPrefix(word, "http") || strings.HasPrefix(word, "www") {
		return URLToken
	}
	if len(word) >= n.config.LongNumberDigits && isAllDigits(word) {
		return LongNumberToken
	}
	return word
}

func isAllDigits(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(word) > 0
}
