package subm

import (
	"context"

	"github.com/google/uuid"

	"github.com/modelboard/backend/contest"
	"github.com/modelboard/backend/logger"
)

type SelectFinalParams struct {
	UserUUID        uuid.UUID
	SubmissionUUIDs []uuid.UUID // posted order becomes the selection rank
}

// SelectFinal replaces the user's selection set with the posted one.
// Validation happens before any write, so a rejected request leaves the
// prior selection untouched; the replacement itself is one atomic unit.
func (s *SubmissionSrvc) SelectFinal(ctx context.Context, p SelectFinalParams) error {
	log := logger.FromContext(ctx)
	now := s.now()

	if err := contest.CheckWritesOpen(now, s.cfg.Deadline, s.cfg.ShowPrivate); err != nil {
		return err
	}

	if err := contest.ValidateSelection(p.SubmissionUUIDs, s.cfg.MaxSelectable); err != nil {
		return err
	}

	owned, err := s.repo.ListUserSubmissions(ctx, p.UserUUID)
	if err != nil {
		return ErrInternalSE().SetDebug(err)
	}
	ownedSet := make(map[uuid.UUID]struct{}, len(owned))
	for _, sub := range owned {
		ownedSet[sub.UUID] = struct{}{}
	}
	for _, id := range p.SubmissionUUIDs {
		if _, ok := ownedSet[id]; !ok {
			return ErrNotYourSubmission()
		}
	}

	sels := make([]Selection, len(p.SubmissionUUIDs))
	for i, id := range p.SubmissionUUIDs {
		sels[i] = Selection{
			UserUUID:       p.UserUUID,
			SubmissionUUID: id,
			Rank:           i + 1,
			SelectedAt:     now,
		}
	}

	if err := s.repo.ReplaceSelections(ctx, p.UserUUID, sels); err != nil {
		return ErrInternalSE().SetDebug(err)
	}

	log.Info("selection replaced", "user", p.UserUUID, "count", len(sels))
	return nil
}
