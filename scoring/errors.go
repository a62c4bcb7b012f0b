package scoring

import "errors"

var (
	// ErrShapeMismatch is returned by Score when the predicted and actual
	// vectors differ in length or are empty.
	ErrShapeMismatch = errors.New("predicted and actual vectors differ in shape")

	// ErrMissingRows is returned when a submission does not cover every
	// row id of the answer key.
	ErrMissingRows = errors.New("submission is missing required rows")

	// ErrMalformedSubmission is returned when a submission contains a
	// duplicate row id, a non-numeric value, or cannot be parsed.
	ErrMalformedSubmission = errors.New("submission is malformed")

	// ErrEvaluationFailed wraps every failure mode of an evaluation.
	// A caller that sees it must not persist any part of the result.
	ErrEvaluationFailed = errors.New("evaluation failed")
)
