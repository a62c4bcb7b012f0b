package subm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/modelboard/backend/conf"
	"github.com/modelboard/backend/scoring"
	"github.com/modelboard/backend/subfile"
)

// SubmissionSrvc owns the upload path: quota and deadline gates, file
// archival, evaluation against the answer key, and persistence. A
// submission row is written only after all three scores exist.
type SubmissionSrvc struct {
	cfg   conf.Contest
	key   *scoring.AnswerKey
	repo  Repo
	files subfile.Store

	now func() time.Time
}

func NewSubmissionSrvc(
	cfg conf.Contest,
	key *scoring.AnswerKey,
	repo Repo,
	files subfile.Store,
) *SubmissionSrvc {
	return &SubmissionSrvc{
		cfg:   cfg,
		key:   key,
		repo:  repo,
		files: files,
		now:   time.Now,
	}
}

// SetClock overrides the service clock, for tests.
func (s *SubmissionSrvc) SetClock(now func() time.Time) {
	s.now = now
}

func (s *SubmissionSrvc) columns() scoring.Columns {
	return scoring.Columns{
		ID:         s.cfg.IDColumn,
		Value:      s.cfg.ValueColumn,
		PublicFlag: s.cfg.PublicFlagColumn,
	}
}

// ListAllSubmissions returns every stored submission, for the leaderboard.
func (s *SubmissionSrvc) ListAllSubmissions(ctx context.Context) ([]Submission, error) {
	subms, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	return subms, nil
}

// ListSelections returns every stored selection, for the leaderboard.
func (s *SubmissionSrvc) ListSelections(ctx context.Context) ([]Selection, error) {
	sels, err := s.repo.ListSelections(ctx)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	return sels, nil
}

// ListUserSubmissions returns the user's own submissions in submit order.
func (s *SubmissionSrvc) ListUserSubmissions(ctx context.Context, userUUID uuid.UUID) ([]Submission, error) {
	subms, err := s.repo.ListUserSubmissions(ctx, userUUID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	return subms, nil
}
