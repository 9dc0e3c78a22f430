package model

import (
	"math"
	"testing"
)

func TestEstimateWorkedExample(t *testing.T) {
	vocab := buildTestVocabulary(t)
	m := Estimate(vocab, 1)

	// V=5, spam_total=3: P(win|spam) = (1+1)/(3+5) = 0.25
	// ham_total=2: P(win|ham) = (0+1)/(2+5) = 1/7
	win := m.Probs["win"]
	if math.Abs(win.Spam-0.25) > 1e-12 {
		t.Errorf("P(win|spam) = %v, expected 0.25", win.Spam)
	}
	if math.Abs(win.Ham-1.0/7.0) > 1e-12 {
		t.Errorf("P(win|ham) = %v, expected %v", win.Ham, 1.0/7.0)
	}
}

func TestEstimateProbabilityBounds(t *testing.T) {
	vocab := NewVocabulary()
	vocab.AddMessage(Ham, []string{"hi", "there", "how", "are", "you"})
	vocab.AddMessage(Ham, []string{"see", "you", "soon"})
	vocab.AddMessage(Spam, []string{"win", "cash", "now", "now"})

	m := Estimate(vocab, 1)

	for token, probs := range m.Probs {
		if probs.Ham <= 0 || probs.Ham > 1 {
			t.Errorf("P(%q|ham) = %v out of (0, 1]", token, probs.Ham)
		}
		if probs.Spam <= 0 || probs.Spam > 1 {
			t.Errorf("P(%q|spam) = %v out of (0, 1]", token, probs.Spam)
		}
	}
}

func TestEstimatePriors(t *testing.T) {
	vocab := NewVocabulary()
	vocab.AddMessage(Ham, []string{"hi"})
	vocab.AddMessage(Ham, []string{"hello"})
	vocab.AddMessage(Ham, []string{"hey"})
	vocab.AddMessage(Spam, []string{"win"})

	m := Estimate(vocab, 1)

	if math.Abs(m.HamPrior-0.75) > 1e-12 {
		t.Errorf("ham prior = %v, expected 0.75", m.HamPrior)
	}
	if math.Abs(m.SpamPrior-0.25) > 1e-12 {
		t.Errorf("spam prior = %v, expected 0.25", m.SpamPrior)
	}
	if math.Abs(m.HamPrior+m.SpamPrior-1.0) > 1e-12 {
		t.Errorf("priors sum to %v, expected 1.0", m.HamPrior+m.SpamPrior)
	}
}

func TestEstimateSmoothingDefault(t *testing.T) {
	vocab := buildTestVocabulary(t)

	m := Estimate(vocab, 0)
	if m.Smoothing != DefaultSmoothing {
		t.Errorf("smoothing = %v, expected default %v", m.Smoothing, DefaultSmoothing)
	}
}

func TestEstimateSingleClassToken(t *testing.T) {
	vocab := buildTestVocabulary(t)
	m := Estimate(vocab, 1)

	// "hi" never appears in spam but still gets positive spam probability
	hi := m.Probs["hi"]
	if hi.Spam <= 0 {
		t.Errorf("P(hi|spam) = %v, expected > 0 from smoothing", hi.Spam)
	}
}
