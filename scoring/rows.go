package scoring

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// SubmissionRow is one (row id, predicted value) pair parsed from an upload.
type SubmissionRow struct {
	ID        string
	Predicted float64
}

// ReadSubmission parses submission rows from a CSV stream. A missing column,
// an unparsable value or a broken csv all count as a malformed submission.
func ReadSubmission(r io.Reader, cols Columns) ([]SubmissionRow, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrMalformedSubmission)
	}

	header := records[0]
	idIdx, err := columnIndex(header, cols.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}
	valIdx, err := columnIndex(header, cols.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}

	rows := make([]SubmissionRow, 0, len(records)-1)
	for _, record := range records[1:] {
		id := strings.TrimSpace(record[idIdx])
		predicted, err := strconv.ParseFloat(strings.TrimSpace(record[valIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %q has non-numeric value", ErrMalformedSubmission, id)
		}
		rows = append(rows, SubmissionRow{ID: id, Predicted: predicted})
	}

	return rows, nil
}

// ReadSubmissionFile parses a submission from disk. Files with a .gz suffix
// are decompressed transparently.
func ReadSubmissionFile(path string, cols Columns) ([]SubmissionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open submission file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad gzip stream: %v", ErrMalformedSubmission, err)
		}
		defer gz.Close()
		r = gz
	}

	return ReadSubmission(r, cols)
}
