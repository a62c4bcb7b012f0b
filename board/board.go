// Package board builds the contest leaderboard as an in-memory aggregation
// pass over materialized submissions, users and selections. Keeping it out
// of SQL makes the selection, tie-break and placeholder rules testable
// without a database.
package board

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/modelboard/backend/contest"
	"github.com/modelboard/backend/subm"
	"github.com/modelboard/backend/user"
)

// Row is one derived leaderboard entry. PrivateScore is nil while the
// contest is open; the HTTP layer renders the placeholder.
type Row struct {
	Rank            int
	Username        string
	PublicScore     float64
	PrivateScore    *float64
	SubmissionCount int
}

// Build computes the ranked leaderboard for the given phase.
//
// Open phase: each user is represented by their most recent submission,
// ordered by public score, private score withheld. Closed phase: each user
// is represented by their primary selected submission (latest when nothing
// is selected), ordered by private score, both scores visible.
//
// The sort is stable over rows pre-ordered by submission time, so equal
// scores keep their submit order. Ranks are positional, 1-based, no gaps,
// never shared.
func Build(
	phase contest.Phase,
	submissions []subm.Submission,
	users []user.User,
	selections []subm.Selection,
	ascending bool,
) []Row {
	usernames := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		usernames[u.UUID] = u.Username
	}

	perUser := make(map[uuid.UUID][]subm.Submission)
	for _, s := range submissions {
		perUser[s.UserUUID] = append(perUser[s.UserUUID], s)
	}

	selected := primarySelections(selections)

	rows := make([]Row, 0, len(perUser))
	finalAt := make(map[string]time.Time, len(perUser)) // username -> final submit time
	for userUUID, subms := range perUser {
		username, ok := usernames[userUUID]
		if !ok {
			continue // submission of a deleted user
		}

		final := latestSubmission(subms)
		if phase == contest.PhaseClosed {
			if id, ok := selected[userUUID]; ok {
				if s, ok := findSubmission(subms, id); ok {
					final = s
				}
			}
		}

		row := Row{
			Username:        username,
			PublicScore:     final.PublicScore,
			SubmissionCount: len(subms),
		}
		if phase == contest.PhaseClosed {
			private := final.PrivateScore
			row.PrivateScore = &private
		}
		rows = append(rows, row)
		finalAt[username] = final.SubmittedAt
	}

	// submit order is the tie-break, so order rows by it before the
	// stable sort on score
	sort.Slice(rows, func(i, j int) bool {
		return finalAt[rows[i].Username].Before(finalAt[rows[j].Username])
	})

	score := func(r Row) float64 {
		if phase == contest.PhaseClosed {
			return *r.PrivateScore
		}
		return r.PublicScore
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return score(rows[i]) < score(rows[j])
		}
		return score(rows[i]) > score(rows[j])
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// primarySelections reduces each user's selection set to the submission with
// the lowest selection rank.
func primarySelections(selections []subm.Selection) map[uuid.UUID]uuid.UUID {
	best := make(map[uuid.UUID]subm.Selection)
	for _, sel := range selections {
		if prev, ok := best[sel.UserUUID]; !ok || sel.Rank < prev.Rank {
			best[sel.UserUUID] = sel
		}
	}
	res := make(map[uuid.UUID]uuid.UUID, len(best))
	for userUUID, sel := range best {
		res[userUUID] = sel.SubmissionUUID
	}
	return res
}

func latestSubmission(subms []subm.Submission) subm.Submission {
	latest := subms[0]
	for _, s := range subms[1:] {
		if s.SubmittedAt.After(latest.SubmittedAt) {
			latest = s
		}
	}
	return latest
}

func findSubmission(subms []subm.Submission, id uuid.UUID) (subm.Submission, bool) {
	for _, s := range subms {
		if s.UUID == id {
			return s, true
		}
	}
	return subm.Submission{}, false
}
