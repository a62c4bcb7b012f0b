package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelboard/backend/scoring"
)

var testColumns = scoring.Columns{
	ID:         "row_id",
	Value:      "prediction",
	PublicFlag: "public",
}

func testAnswerKey(t *testing.T) *scoring.AnswerKey {
	t.Helper()
	keyCsv := "row_id,prediction,public\n" +
		"1,1,1\n" +
		"2,0,0\n" +
		"3,1,1\n"
	key, err := scoring.ReadAnswerKey(strings.NewReader(keyCsv), testColumns)
	require.NoError(t, err)
	return key
}

func TestEvaluatePublicPrivateTotalSplit(t *testing.T) {
	key := testAnswerKey(t)

	rows := []scoring.SubmissionRow{
		{ID: "1", Predicted: 1},
		{ID: "2", Predicted: 1},
		{ID: "3", Predicted: 0},
	}

	res, err := scoring.Evaluate(rows, key)
	require.NoError(t, err)

	// public rows 1 and 3: mean((1-1)^2, (0-1)^2) = 0.5
	assert.Equal(t, 0.5, res.Public)
	// private row 2: (1-0)^2 = 1.0
	assert.Equal(t, 1.0, res.Private)
	// total: mean(0, 1, 1)
	assert.InDelta(t, 2.0/3.0, res.Total, 1e-9)
}

func TestEvaluateKeyAgainstItselfIsZero(t *testing.T) {
	key := testAnswerKey(t)

	rows := make([]scoring.SubmissionRow, 0, key.Len())
	for _, kr := range key.Rows() {
		rows = append(rows, scoring.SubmissionRow{ID: kr.ID, Predicted: kr.Truth})
	}

	res, err := scoring.Evaluate(rows, key)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Public)
	assert.Equal(t, 0.0, res.Private)
	assert.Equal(t, 0.0, res.Total)
}

func TestEvaluateMissingRows(t *testing.T) {
	key := testAnswerKey(t)

	rows := []scoring.SubmissionRow{
		{ID: "1", Predicted: 1},
		{ID: "3", Predicted: 0},
	}

	_, err := scoring.Evaluate(rows, key)
	assert.ErrorIs(t, err, scoring.ErrEvaluationFailed)
	assert.ErrorIs(t, err, scoring.ErrMissingRows)
}

func TestEvaluateDuplicateRowID(t *testing.T) {
	key := testAnswerKey(t)

	rows := []scoring.SubmissionRow{
		{ID: "1", Predicted: 1},
		{ID: "1", Predicted: 0},
		{ID: "2", Predicted: 1},
		{ID: "3", Predicted: 0},
	}

	_, err := scoring.Evaluate(rows, key)
	assert.ErrorIs(t, err, scoring.ErrEvaluationFailed)
	assert.ErrorIs(t, err, scoring.ErrMalformedSubmission)
}

func TestEvaluateExtraRowsIgnored(t *testing.T) {
	key := testAnswerKey(t)

	rows := []scoring.SubmissionRow{
		{ID: "1", Predicted: 1},
		{ID: "2", Predicted: 0},
		{ID: "3", Predicted: 1},
		{ID: "999", Predicted: 123.0}, // not in the key
	}

	res, err := scoring.Evaluate(rows, key)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Total)
}

func TestReadSubmissionMalformedValue(t *testing.T) {
	subCsv := "row_id,prediction\n1,abc\n"
	_, err := scoring.ReadSubmission(strings.NewReader(subCsv), testColumns)
	assert.ErrorIs(t, err, scoring.ErrMalformedSubmission)
}

func TestReadSubmissionMissingColumn(t *testing.T) {
	subCsv := "row_id,score\n1,0.5\n"
	_, err := scoring.ReadSubmission(strings.NewReader(subCsv), testColumns)
	assert.ErrorIs(t, err, scoring.ErrMalformedSubmission)
}

func TestEvaluateReaderWrapsParseFailure(t *testing.T) {
	key := testAnswerKey(t)
	_, err := scoring.EvaluateReader(strings.NewReader("not,a\nvalid"), key, testColumns)
	assert.ErrorIs(t, err, scoring.ErrEvaluationFailed)
}

func TestReadAnswerKeyDuplicateID(t *testing.T) {
	keyCsv := "row_id,prediction,public\n1,1,1\n1,0,0\n"
	_, err := scoring.ReadAnswerKey(strings.NewReader(keyCsv), testColumns)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate row id")
}

func TestReadAnswerKeyAcceptsBoolFlags(t *testing.T) {
	keyCsv := "row_id,prediction,public\na,0.5,true\nb,0.25,false\n"
	key, err := scoring.ReadAnswerKey(strings.NewReader(keyCsv), testColumns)
	require.NoError(t, err)
	require.Equal(t, 2, key.Len())
	assert.True(t, key.Rows()[0].Public)
	assert.False(t, key.Rows()[1].Public)
}
