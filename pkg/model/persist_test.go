package model

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/smsguard/spam-classifier/pkg/textproc"
)

func TestModelSaveLoadRoundTrip(t *testing.T) {
	normalizer := textproc.NewNormalizer(nil)
	messages := []TrainingMessage{
		{Label: Ham, Text: "hi there how are you"},
		{Label: Ham, Text: "see you at lunch"},
		{Label: Spam, Text: "win cash now"},
	}

	vocab := BuildVocabulary(messages, normalizer, 1)
	original := Estimate(vocab, 1)

	path := filepath.Join(t.TempDir(), "model.json")
	if err := SaveModel(path, original, normalizer.Config()); err != nil {
		t.Fatalf("failed to save model: %v", err)
	}

	loaded, normCfg, err := LoadModel(path)
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}

	if !reflect.DeepEqual(loaded.Vocab, original.Vocab) {
		t.Error("loaded vocabulary differs from original")
	}
	if !reflect.DeepEqual(loaded.Probs, original.Probs) {
		t.Error("loaded probability table differs from original")
	}
	if loaded.HamPrior != original.HamPrior || loaded.SpamPrior != original.SpamPrior {
		t.Errorf("loaded priors %v/%v differ from %v/%v",
			loaded.HamPrior, loaded.SpamPrior, original.HamPrior, original.SpamPrior)
	}
	if !reflect.DeepEqual(normCfg, normalizer.Config()) {
		t.Errorf("loaded normalizer config %+v differs from %+v", normCfg, normalizer.Config())
	}

	// Same decisions before and after the round trip
	before := NewClassifier(original, normalizer)
	after := NewClassifier(loaded, textproc.NewNormalizer(normCfg))
	for _, text := range []string{"win cash now", "see you at lunch", "zebra wombat"} {
		if b, a := before.Classify(text), after.Classify(text); b != a {
			t.Errorf("Classify(%q) changed after round trip: %+v vs %+v", text, b, a)
		}
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, _, err := LoadModel(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing model file")
	}
}

func TestLoadModelEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, _, err := LoadModel(path); err == nil {
		t.Error("expected error for model file without vocabulary")
	}
}
