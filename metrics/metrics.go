// Package metrics exposes the contest's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_submissions_accepted_total",
		Help: "Uploads that were scored and persisted.",
	})

	SubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contest_submissions_rejected_total",
		Help: "Uploads rejected before or during evaluation.",
	}, []string{"reason"})

	EvaluationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_evaluation_failures_total",
		Help: "Submission files that failed to parse or score.",
	})

	LeaderboardBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contest_leaderboard_builds_total",
		Help: "Leaderboard aggregation passes served.",
	})
)
