package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/smsguard/spam-classifier/pkg/textproc"
)

// modelFile is the on-disk representation of a trained model. Raw counts
// are stored rather than the derived probability table; probabilities are
// re-estimated on load, which keeps the file smaller and guarantees the
// table always matches the stored smoothing factor.
type modelFile struct {
	Vocabulary *Vocabulary                `json:"vocabulary"`
	Smoothing  float64                    `json:"smoothing"`
	Normalizer *textproc.NormalizerConfig `json:"normalizer"`
	Trained    time.Time                  `json:"trained"`
}

// SaveModel writes a trained model to a JSON file alongside the normalizer
// settings it was trained with
func SaveModel(path string, m *Model, normalizerConfig *textproc.NormalizerConfig) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	mf := modelFile{
		Vocabulary: m.Vocab,
		Smoothing:  m.Smoothing,
		Normalizer: normalizerConfig,
		Trained:    time.Now(),
	}

	if err := encoder.Encode(mf); err != nil {
		return fmt.Errorf("failed to encode model: %v", err)
	}

	return nil
}

// LoadModel reads a model file and re-estimates the probability table from
// its stored counts. The returned normalizer config restores the token
// conventions the model was trained under.
func LoadModel(path string) (*Model, *textproc.NormalizerConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open model file: %v", err)
	}
	defer file.Close()

	var mf modelFile
	if err := json.NewDecoder(file).Decode(&mf); err != nil {
		return nil, nil, fmt.Errorf("failed to decode model: %v", err)
	}

	if mf.Vocabulary == nil || mf.Vocabulary.Words == nil {
		return nil, nil, fmt.Errorf("model file has no vocabulary: %s", path)
	}

	if mf.Normalizer == nil {
		mf.Normalizer = textproc.DefaultNormalizerConfig()
	}

	return Estimate(mf.Vocabulary, mf.Smoothing), mf.Normalizer, nil
}
