package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smsguard/spam-classifier/pkg/model"
)

func TestReadBasic(t *testing.T) {
	csv := "v1,v2\n" +
		"ham,\"Go until jurong point, crazy..\"\n" +
		"spam,WINNER!! You have won a prize\n" +
		"ham,Ok lar... Joking wif u oni\n"

	messages, err := Read(strings.NewReader(csv), DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(messages) != 3 {
		t.Fatalf("got %d messages, expected 3", len(messages))
	}

	if messages[0].Label != model.Ham {
		t.Errorf("first label = %s, expected ham", messages[0].Label)
	}
	if messages[1].Label != model.Spam {
		t.Errorf("second label = %s, expected spam", messages[1].Label)
	}
	if messages[1].Text != "WINNER!! You have won a prize" {
		t.Errorf("second text = %q", messages[1].Text)
	}
}

func TestReadConcatenatesTextColumns(t *testing.T) {
	// Ragged rows: message text spilled across unnamed trailing columns
	csv := "v1,v2,v3,v4\n" +
		"spam,win cash,call now,limited offer\n" +
		"ham,see you,,\n"

	messages, err := Read(strings.NewReader(csv), DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if messages[0].Text != "win cash call now limited offer" {
		t.Errorf("concatenated text = %q", messages[0].Text)
	}
	if messages[1].Text != "see you" {
		t.Errorf("text with empty trailing columns = %q", messages[1].Text)
	}
}

func TestReadExplicitTextColumns(t *testing.T) {
	csv := "label,subject,body,notes\n" +
		"spam,free prize,claim it today,internal\n"

	opts := DefaultOptions()
	opts.TextColumns = []int{1, 2}

	messages, err := Read(strings.NewReader(csv), opts)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if messages[0].Text != "free prize claim it today" {
		t.Errorf("text = %q, expected the two selected columns joined", messages[0].Text)
	}
}

func TestReadInvalidLabel(t *testing.T) {
	csv := "v1,v2\n" +
		"ham,hello\n" +
		"junk,not a valid label\n"

	if _, err := Read(strings.NewReader(csv), DefaultOptions()); err == nil {
		t.Error("expected error for invalid label")
	}
}

func TestReadLabelCaseAndWhitespace(t *testing.T) {
	csv := "v1,v2\n" +
		" HAM ,hello there\n" +
		"Spam,win now\n"

	messages, err := Read(strings.NewReader(csv), DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if messages[0].Label != model.Ham || messages[1].Label != model.Spam {
		t.Errorf("labels = %s/%s, expected ham/spam", messages[0].Label, messages[1].Label)
	}
}

func TestReadSkipsEmptyText(t *testing.T) {
	csv := "v1,v2\n" +
		"ham,\n" +
		"spam,win cash\n"

	messages, err := Read(strings.NewReader(csv), DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("got %d messages, expected 1 (empty-text row skipped)", len(messages))
	}
	if messages[0].Label != model.Spam {
		t.Errorf("surviving label = %s, expected spam", messages[0].Label)
	}
}

func TestLoadWindows1252(t *testing.T) {
	// 0xE9 is é in Windows-1252 and an invalid byte sequence in UTF-8
	raw := []byte("v1,v2\nham,caf\xe9 at noon\n")

	path := filepath.Join(t.TempDir(), "spam.csv")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	messages, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if messages[0].Text != "café at noon" {
		t.Errorf("text = %q, expected Windows-1252 bytes decoded", messages[0].Text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions()); err == nil {
		t.Error("expected error for missing dataset file")
	}
}
