package contest

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the display state of the contest. It is never persisted:
// every request recomputes it from the clock and the configuration.
type Phase int

const (
	PhaseOpen Phase = iota
	PhaseClosed
)

// IsOver reports whether the contest is closed: the deadline has passed or
// the operator forced the closed display via the override flag.
func IsOver(now time.Time, deadline time.Time, showPrivate bool) bool {
	return !now.Before(deadline) || showPrivate
}

// CurrentPhase maps IsOver onto the leaderboard display phase.
func CurrentPhase(now time.Time, deadline time.Time, showPrivate bool) Phase {
	if IsOver(now, deadline, showPrivate) {
		return PhaseClosed
	}
	return PhaseOpen
}

// CheckWritesOpen rejects uploads and selections once the contest is over.
func CheckWritesOpen(now time.Time, deadline time.Time, showPrivate bool) error {
	if IsOver(now, deadline, showPrivate) {
		return ErrContestClosedForWrites()
	}
	return nil
}

// CheckDailyQuota counts the user's submissions in the trailing 24 hours and
// fails when the count exceeds dailyLimit. The comparison is a strict
// greater-than, which admits dailyLimit+1 uploads per window. That matches
// the historical behavior and is pinned by tests; do not "fix" it here.
func CheckDailyQuota(now time.Time, submittedAt []time.Time, dailyLimit int) error {
	windowStart := now.Add(-24 * time.Hour)
	count := 0
	for _, ts := range submittedAt {
		if ts.After(windowStart) {
			count++
		}
	}
	if count > dailyLimit {
		return ErrQuotaExceeded(dailyLimit)
	}
	return nil
}

// ValidateSelection requires the posted set to hold exactly maxSelectable
// distinct submission ids, not at most.
func ValidateSelection(submissionIDs []uuid.UUID, maxSelectable int) error {
	distinct := make(map[uuid.UUID]struct{}, len(submissionIDs))
	for _, id := range submissionIDs {
		distinct[id] = struct{}{}
	}
	if len(distinct) != maxSelectable {
		return ErrInvalidSelectionCount(maxSelectable)
	}
	return nil
}
