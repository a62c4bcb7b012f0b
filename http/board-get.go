package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"

	"github.com/modelboard/backend/board"
	"github.com/modelboard/backend/contest"
	"github.com/modelboard/backend/httpjson"
	"github.com/modelboard/backend/metrics"
)

// PrivateScorePlaceholder is what the leaderboard shows instead of a
// private score while the contest is open.
const PrivateScorePlaceholder = "*"

type LeaderboardRowView struct {
	Rank            int     `json:"rank"`
	Username        string  `json:"username"`
	PublicScore     float64 `json:"public_score"`
	PrivateScore    any     `json:"private_score"` // float64 or the placeholder
	SubmissionCount int     `json:"submission_count"`
}

func (httpserver *HttpServer) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())
	ctx := r.Context()

	subms, err := httpserver.submSrvc.ListAllSubmissions(ctx)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}
	users, err := httpserver.userSrvc.ListUsers(ctx)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}
	sels, err := httpserver.submSrvc.ListSelections(ctx)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	phase := contest.CurrentPhase(time.Now(), httpserver.cfg.Deadline, httpserver.cfg.ShowPrivate)
	rows := board.Build(phase, subms, users, sels, httpserver.cfg.Ascending())
	metrics.LeaderboardBuilds.Inc()

	response := make([]LeaderboardRowView, len(rows))
	for i, row := range rows {
		view := LeaderboardRowView{
			Rank:            row.Rank,
			Username:        row.Username,
			PublicScore:     row.PublicScore,
			PrivateScore:    PrivateScorePlaceholder,
			SubmissionCount: row.SubmissionCount,
		}
		if row.PrivateScore != nil {
			view.PrivateScore = *row.PrivateScore
		}
		response[i] = view
	}

	httpjson.WriteSuccessJson(w, response)
}
