package scoring

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Columns names the CSV columns a contest uses. The answer key file carries
// all three; submission files only need the id and value columns.
type Columns struct {
	ID         string
	Value      string
	PublicFlag string
}

// KeyRow is one row of the answer key.
type KeyRow struct {
	ID     string
	Truth  float64
	Public bool
}

// AnswerKey is the ordered ground truth every submission is scored against.
// It is loaded once at startup and never mutated.
type AnswerKey struct {
	rows  []KeyRow
	index map[string]int // row id -> position in rows
}

// Rows returns the key rows in file order.
func (k *AnswerKey) Rows() []KeyRow {
	return k.rows
}

// Len returns the number of rows in the key.
func (k *AnswerKey) Len() int {
	return len(k.rows)
}

// ReadAnswerKey parses an answer key CSV from r. Every row id must be unique.
func ReadAnswerKey(r io.Reader, cols Columns) (*AnswerKey, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse answer key csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("answer key has no data rows")
	}

	header := records[0]
	idIdx, err := columnIndex(header, cols.ID)
	if err != nil {
		return nil, err
	}
	valIdx, err := columnIndex(header, cols.Value)
	if err != nil {
		return nil, err
	}
	pubIdx, err := columnIndex(header, cols.PublicFlag)
	if err != nil {
		return nil, err
	}

	key := &AnswerKey{
		rows:  make([]KeyRow, 0, len(records)-1),
		index: make(map[string]int, len(records)-1),
	}

	for _, record := range records[1:] {
		id := strings.TrimSpace(record[idIdx])
		truth, err := strconv.ParseFloat(strings.TrimSpace(record[valIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("answer key row %q has non-numeric value: %w", id, err)
		}
		public, err := strconv.ParseBool(strings.TrimSpace(record[pubIdx]))
		if err != nil {
			return nil, fmt.Errorf("answer key row %q has invalid public flag: %w", id, err)
		}
		if _, exists := key.index[id]; exists {
			return nil, fmt.Errorf("answer key has duplicate row id %q", id)
		}
		key.index[id] = len(key.rows)
		key.rows = append(key.rows, KeyRow{ID: id, Truth: truth, Public: public})
	}

	return key, nil
}

// LoadAnswerKey reads the answer key from a CSV file on disk.
func LoadAnswerKey(path string, cols Columns) (*AnswerKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open answer key: %w", err)
	}
	defer f.Close()
	return ReadAnswerKey(f, cols)
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in csv header", name)
}
