package subm

import (
	"fmt"
	"net/http"

	"github.com/modelboard/backend/srvcerror"
)

const ErrCodeSubmissionFailed = "submission_failed"

// ErrSubmissionFailed is the single user-visible failure for anything that
// went wrong while storing, parsing or scoring an upload. The cause stays
// in the debug error; no internal detail reaches the user.
func ErrSubmissionFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionFailed,
		"File did not upload or score correctly",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidFileType = "invalid_file_type"

func ErrInvalidFileType(allowed []string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidFileType,
		fmt.Sprintf("File type not allowed, expected one of: %v", allowed),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"Submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotYourSubmission = "not_your_submission"

func ErrNotYourSubmission() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotYourSubmission,
		"Only your own submissions can be selected",
	).SetHttpStatusCode(http.StatusForbidden)
}

func ErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
