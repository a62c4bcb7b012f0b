package board_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelboard/backend/board"
	"github.com/modelboard/backend/contest"
	"github.com/modelboard/backend/subm"
	"github.com/modelboard/backend/user"
)

var baseTime = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func newUser(name string) user.User {
	return user.User{UUID: uuid.New(), Username: name, Email: name + "@example.com"}
}

func newSubm(u user.User, minutesAfter int, public, private float64) subm.Submission {
	return subm.Submission{
		UUID:         uuid.New(),
		UserUUID:     u.UUID,
		Filename:     "model.csv",
		SubmittedAt:  baseTime.Add(time.Duration(minutesAfter) * time.Minute),
		PublicScore:  public,
		PrivateScore: private,
		TotalScore:   (public + private) / 2,
	}
}

func TestBuildOpenUsesLatestSubmissionAndWithholdsPrivate(t *testing.T) {
	alice := newUser("alice")
	bob := newUser("bob")

	subms := []subm.Submission{
		newSubm(alice, 0, 0.9, 0.1),
		newSubm(alice, 10, 0.2, 0.8), // alice's latest
		newSubm(bob, 5, 0.4, 0.3),
	}

	rows := board.Build(contest.PhaseOpen, subms, []user.User{alice, bob}, nil, true)
	require.Len(t, rows, 2)

	// alice's latest has the better public score
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 0.2, rows[0].PublicScore)
	assert.Equal(t, 2, rows[0].SubmissionCount)
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, 1, rows[1].SubmissionCount)

	for _, row := range rows {
		assert.Nil(t, row.PrivateScore, "open phase must never expose a private score")
	}
}

func TestBuildClosedPrefersSelectionOverLatest(t *testing.T) {
	alice := newUser("alice")

	chosen := newSubm(alice, 0, 0.9, 0.1)
	latest := newSubm(alice, 10, 0.2, 0.8)
	subms := []subm.Submission{chosen, latest}

	sels := []subm.Selection{{
		UserUUID:       alice.UUID,
		SubmissionUUID: chosen.UUID,
		Rank:           1,
		SelectedAt:     baseTime,
	}}

	rows := board.Build(contest.PhaseClosed, subms, []user.User{alice}, sels, true)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].PrivateScore)
	assert.Equal(t, 0.1, *rows[0].PrivateScore, "selected submission counts, not the latest")
	assert.Equal(t, 0.9, rows[0].PublicScore)
}

func TestBuildClosedFallsBackToLatestWithoutSelection(t *testing.T) {
	alice := newUser("alice")

	subms := []subm.Submission{
		newSubm(alice, 0, 0.9, 0.1),
		newSubm(alice, 10, 0.2, 0.8),
	}

	rows := board.Build(contest.PhaseClosed, subms, []user.User{alice}, nil, true)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].PrivateScore)
	assert.Equal(t, 0.8, *rows[0].PrivateScore)
}

func TestBuildClosedUsesPrimarySelection(t *testing.T) {
	alice := newUser("alice")

	first := newSubm(alice, 0, 0.5, 0.5)
	second := newSubm(alice, 5, 0.6, 0.2)
	subms := []subm.Submission{first, second}

	// the lowest selection rank is the primary pick
	sels := []subm.Selection{
		{UserUUID: alice.UUID, SubmissionUUID: second.UUID, Rank: 2, SelectedAt: baseTime},
		{UserUUID: alice.UUID, SubmissionUUID: first.UUID, Rank: 1, SelectedAt: baseTime},
	}

	rows := board.Build(contest.PhaseClosed, subms, []user.User{alice}, sels, true)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].PrivateScore)
	assert.Equal(t, 0.5, *rows[0].PrivateScore)
}

// two users tied on score keep submit order and still get distinct ranks
func TestBuildTiedScoresKeepSubmitOrder(t *testing.T) {
	early := newUser("early")
	late := newUser("late")

	subms := []subm.Submission{
		newSubm(late, 30, 0.5, 0.5),
		newSubm(early, 1, 0.5, 0.5),
	}

	rows := board.Build(contest.PhaseOpen, subms, []user.User{early, late}, nil, true)
	require.Len(t, rows, 2)
	assert.Equal(t, "early", rows[0].Username)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "late", rows[1].Username)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestBuildRanksAreStrictSequence(t *testing.T) {
	users := []user.User{}
	subms := []subm.Submission{}
	for i, name := range []string{"a", "b", "c", "d"} {
		u := newUser(name)
		users = append(users, u)
		// everyone ties at 0.5
		subms = append(subms, newSubm(u, i, 0.5, 0.5))
	}

	rows := board.Build(contest.PhaseOpen, subms, users, nil, true)
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank, "ranks must be 1..N with no gaps and no sharing")
	}
}

func TestBuildDescendingOrder(t *testing.T) {
	alice := newUser("alice")
	bob := newUser("bob")

	subms := []subm.Submission{
		newSubm(alice, 0, 0.2, 0.2),
		newSubm(bob, 1, 0.8, 0.8),
	}

	rows := board.Build(contest.PhaseOpen, subms, []user.User{alice, bob}, nil, false)
	require.Len(t, rows, 2)
	assert.Equal(t, "bob", rows[0].Username, "higher score first when descending")
}

func TestBuildSkipsUsersWithoutSubmissions(t *testing.T) {
	active := newUser("active")
	lurker := newUser("lurker")

	subms := []subm.Submission{newSubm(active, 0, 0.5, 0.5)}

	rows := board.Build(contest.PhaseOpen, subms, []user.User{active, lurker}, nil, true)
	require.Len(t, rows, 1)
	assert.Equal(t, "active", rows[0].Username)
}

func TestBuildClosedOrdersByPrivateScore(t *testing.T) {
	alice := newUser("alice")
	bob := newUser("bob")

	subms := []subm.Submission{
		newSubm(alice, 0, 0.1, 0.9), // good public, bad private
		newSubm(bob, 1, 0.9, 0.1),   // bad public, good private
	}

	rows := board.Build(contest.PhaseClosed, subms, []user.User{alice, bob}, nil, true)
	require.Len(t, rows, 2)
	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, "alice", rows[1].Username)
}
