package http

import (
	"time"

	"github.com/modelboard/backend/contest"
	"github.com/modelboard/backend/subm"
)

type SubmissionView struct {
	UUID        string `json:"uuid"`
	Filename    string `json:"filename"`
	SubmittedAt string `json:"submitted_at"`

	PublicScore float64 `json:"public_score"`
	// private and total reveal held-out information, so they are only
	// present once the contest is over
	PrivateScore *float64 `json:"private_score,omitempty"`
	TotalScore   *float64 `json:"total_score,omitempty"`
}

func (httpserver *HttpServer) mapSubm(s subm.Submission, now time.Time) SubmissionView {
	view := SubmissionView{
		UUID:        s.UUID.String(),
		Filename:    s.Filename,
		SubmittedAt: s.SubmittedAt.UTC().Format(time.RFC3339),
		PublicScore: s.PublicScore,
	}
	if contest.IsOver(now, httpserver.cfg.Deadline, httpserver.cfg.ShowPrivate) {
		private := s.PrivateScore
		total := s.TotalScore
		view.PrivateScore = &private
		view.TotalScore = &total
	}
	return view
}
