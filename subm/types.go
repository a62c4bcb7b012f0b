package subm

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one scored upload. It is created only after evaluation
// succeeded and is never mutated afterwards.
type Submission struct {
	UUID         uuid.UUID
	UserUUID     uuid.UUID
	Filename     string
	SubmittedAt  time.Time
	PublicScore  float64
	PrivateScore float64
	TotalScore   float64
}

// Selection marks a submission as part of the user's final set. A user has
// at most one active selection set; replacing it is atomic.
type Selection struct {
	UserUUID       uuid.UUID
	SubmissionUUID uuid.UUID
	Rank           int // 1 = the user's primary pick
	SelectedAt     time.Time
}
