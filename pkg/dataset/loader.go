package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/smsguard/spam-classifier/pkg/model"
)

// Options controls how a tabular message file is read
type Options struct {
	// Column index holding the ham/spam label
	LabelColumn int `yaml:"label_column"`

	// Column indexes concatenated (space-joined) into the message text.
	// Empty means every column after LabelColumn.
	TextColumns []int `yaml:"text_columns"`

	// Skip the first row
	HasHeader bool `yaml:"has_header"`
}

// DefaultOptions matches the common SMS corpus layout: label in the first
// column, message text in the rest, with a header row
func DefaultOptions() Options {
	return Options{
		LabelColumn: 0,
		HasHeader:   true,
	}
}

// Load reads labeled messages from a CSV file. Input bytes are decoded as
// Windows-1252 so arbitrary byte content never fails to load; undecodable
// sequences become substitution characters rather than errors. Rows whose
// label is neither ham nor spam are rejected here, before the core ever
// sees them. Rows with empty message text are skipped.
func Load(path string, opts Options) ([]model.TrainingMessage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %v", err)
	}
	defer file.Close()

	return Read(file, opts)
}

// Read consumes CSV records from r per Load's contract
func Read(r io.Reader, opts Options) ([]model.TrainingMessage, error) {
	decoded := transform.NewReader(r, charmap.Windows1252.NewDecoder())

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1 // dataset rows are ragged

	var messages []model.TrainingMessage
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %v", line+1, err)
		}
		line++

		if opts.HasHeader && line == 1 {
			continue
		}

		if opts.LabelColumn >= len(record) {
			return nil, fmt.Errorf("row %d has no label column %d", line, opts.LabelColumn)
		}

		label := model.Label(strings.ToLower(strings.TrimSpace(record[opts.LabelColumn])))
		if label != model.Ham && label != model.Spam {
			return nil, fmt.Errorf("row %d has invalid label %q", line, record[opts.LabelColumn])
		}

		text := joinTextColumns(record, opts)
		if text == "" {
			continue
		}

		messages = append(messages, model.TrainingMessage{Label: label, Text: text})
	}

	return messages, nil
}

func joinTextColumns(record []string, opts Options) string {
	var parts []string

	if len(opts.TextColumns) > 0 {
		for _, col := range opts.TextColumns {
			if col < len(record) && record[col] != "" {
				parts = append(parts, record[col])
			}
		}
	} else {
		for col, field := range record {
			if col == opts.LabelColumn || field == "" {
				continue
			}
			parts = append(parts, field)
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
