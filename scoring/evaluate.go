package scoring

import (
	"fmt"
	"io"
)

// Result holds the three error metrics of one evaluated submission.
// Public covers the rows visible before the deadline, Private the held-out
// rows, Total the full answer key.
type Result struct {
	Public  float64
	Private float64
	Total   float64
}

// Evaluate joins submission rows against the answer key by row id, splits
// the joined rows into the public and private partitions in answer-key
// order, and scores each partition plus the full set.
//
// The submission must cover every key row id (extra rows are ignored).
// A duplicate row id is a malformed submission. Either failure, like every
// other one, is wrapped into ErrEvaluationFailed so the caller has a single
// signal that nothing may be persisted.
func Evaluate(rows []SubmissionRow, key *AnswerKey) (Result, error) {
	res, err := evaluate(rows, key)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	return res, nil
}

func evaluate(rows []SubmissionRow, key *AnswerKey) (Result, error) {
	predicted := make(map[string]float64, len(rows))
	for _, row := range rows {
		if _, dup := predicted[row.ID]; dup {
			return Result{}, fmt.Errorf("%w: duplicate row id %q", ErrMalformedSubmission, row.ID)
		}
		predicted[row.ID] = row.Predicted
	}

	keyRows := key.Rows()
	predAll := make([]float64, 0, len(keyRows))
	actualAll := make([]float64, 0, len(keyRows))
	var predPub, actualPub, predPriv, actualPriv []float64

	// answer-key order everywhere, so the float reductions are reproducible
	for _, kr := range keyRows {
		p, ok := predicted[kr.ID]
		if !ok {
			return Result{}, fmt.Errorf("%w: row id %q not in submission", ErrMissingRows, kr.ID)
		}
		predAll = append(predAll, p)
		actualAll = append(actualAll, kr.Truth)
		if kr.Public {
			predPub = append(predPub, p)
			actualPub = append(actualPub, kr.Truth)
		} else {
			predPriv = append(predPriv, p)
			actualPriv = append(actualPriv, kr.Truth)
		}
	}

	public, err := Score(predPub, actualPub)
	if err != nil {
		return Result{}, fmt.Errorf("public partition: %w", err)
	}
	private, err := Score(predPriv, actualPriv)
	if err != nil {
		return Result{}, fmt.Errorf("private partition: %w", err)
	}
	total, err := Score(predAll, actualAll)
	if err != nil {
		return Result{}, fmt.Errorf("total: %w", err)
	}

	return Result{Public: public, Private: private, Total: total}, nil
}

// EvaluateFile parses a submission file and evaluates it against the key.
// Parse failures, including I/O errors, surface as ErrEvaluationFailed.
func EvaluateFile(path string, key *AnswerKey, cols Columns) (Result, error) {
	rows, err := ReadSubmissionFile(path, cols)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	return Evaluate(rows, key)
}

// EvaluateReader is EvaluateFile for an already-open stream.
func EvaluateReader(r io.Reader, key *AnswerKey, cols Columns) (Result, error) {
	rows, err := ReadSubmission(r, cols)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrEvaluationFailed, err)
	}
	return Evaluate(rows, key)
}
