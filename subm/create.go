package subm

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/modelboard/backend/contest"
	"github.com/modelboard/backend/logger"
	"github.com/modelboard/backend/metrics"
	"github.com/modelboard/backend/scoring"
	"github.com/modelboard/backend/subfile"
)

type CreateSubmissionParams struct {
	UserUUID uuid.UUID
	Filename string
	Content  []byte
}

// CreateSubmission runs the whole upload path: deadline gate, daily quota,
// archive, evaluate, persist. Ordering matters: the row is inserted last,
// after evaluation produced all three scores, so no partially-scored
// submission is ever visible to a leaderboard read.
func (s *SubmissionSrvc) CreateSubmission(ctx context.Context, p CreateSubmissionParams) (*Submission, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	if err := contest.CheckWritesOpen(now, s.cfg.Deadline, s.cfg.ShowPrivate); err != nil {
		metrics.SubmissionsRejected.WithLabelValues("contest_closed").Inc()
		return nil, err
	}

	if !allowedFile(p.Filename, s.cfg.AllowedExtensions) {
		metrics.SubmissionsRejected.WithLabelValues("file_type").Inc()
		return nil, ErrInvalidFileType(s.cfg.AllowedExtensions)
	}

	// The quota read races concurrent uploads by the same user; that is
	// tolerated, the invariant is contest accuracy, not hard capacity.
	prev, err := s.repo.ListUserSubmissions(ctx, p.UserUUID)
	if err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}
	timestamps := make([]time.Time, len(prev))
	for i, ps := range prev {
		timestamps[i] = ps.SubmittedAt
	}
	if err := contest.CheckDailyQuota(now, timestamps, s.cfg.DailyLimit); err != nil {
		metrics.SubmissionsRejected.WithLabelValues("quota").Inc()
		return nil, err
	}

	key := subfile.Key(p.UserUUID, now, p.Filename)
	ref, err := s.files.Save(ctx, key, p.Content)
	if err != nil {
		metrics.SubmissionsRejected.WithLabelValues("archive").Inc()
		return nil, ErrSubmissionFailed().SetDebug(err)
	}

	res, err := s.evaluate(p.Filename, p.Content)
	if err != nil {
		metrics.EvaluationFailures.Inc()
		log.Warn("submission failed evaluation",
			"user", p.UserUUID, "file", ref, "error", err)
		return nil, ErrSubmissionFailed().SetDebug(err)
	}

	submission := Submission{
		UUID:         uuid.New(),
		UserUUID:     p.UserUUID,
		Filename:     key,
		SubmittedAt:  now,
		PublicScore:  res.Public,
		PrivateScore: res.Private,
		TotalScore:   res.Total,
	}

	if err := s.repo.StoreSubmission(ctx, submission); err != nil {
		return nil, ErrInternalSE().SetDebug(err)
	}

	metrics.SubmissionsAccepted.Inc()
	log.Info("submission scored",
		"user", p.UserUUID,
		"file", key,
		"public_score", res.Public)

	return &submission, nil
}

func (s *SubmissionSrvc) evaluate(filename string, content []byte) (scoring.Result, error) {
	var r io.Reader = bytes.NewReader(content)
	if strings.HasSuffix(strings.ToLower(filename), ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return scoring.Result{}, err
		}
		defer gz.Close()
		r = gz
	}
	return scoring.EvaluateReader(r, s.key, s.columns())
}

func allowedFile(filename string, allowed []string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}
