package contest

import (
	"fmt"
	"net/http"

	"github.com/modelboard/backend/srvcerror"
)

const ErrCodeQuotaExceeded = "daily_quota_exceeded"

func ErrQuotaExceeded(dailyLimit int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuotaExceeded,
		fmt.Sprintf("Daily submission limit of %d reached, try again later", dailyLimit),
	).SetHttpStatusCode(http.StatusTooManyRequests)
}

const ErrCodeInvalidSelectionCount = "invalid_selection_count"

func ErrInvalidSelectionCount(maxSelectable int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidSelectionCount,
		fmt.Sprintf("Exactly %d submission(s) must be selected", maxSelectable),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeContestClosed = "contest_closed"

func ErrContestClosedForWrites() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeContestClosed,
		"The contest is over, uploads and selections are closed",
	).SetHttpStatusCode(http.StatusForbidden)
}
