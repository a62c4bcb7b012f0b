package subm

import (
	"context"

	"github.com/google/uuid"
)

// Repo persists submissions and selection sets. StoreSubmission must be
// durable before the submission becomes visible to any list call, and
// ReplaceSelections swaps a user's whole selection set atomically: a
// concurrent reader sees either the old set or the new one, never neither.
type Repo interface {
	StoreSubmission(ctx context.Context, s Submission) error
	ListSubmissions(ctx context.Context) ([]Submission, error)
	ListUserSubmissions(ctx context.Context, userUUID uuid.UUID) ([]Submission, error)
	ReplaceSelections(ctx context.Context, userUUID uuid.UUID, sels []Selection) error
	ListSelections(ctx context.Context) ([]Selection, error)
}
