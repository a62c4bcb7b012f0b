package subm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) Repo {
	return &pgRepo{pool: pool}
}

// StoreSubmission implements Repo
func (r *pgRepo) StoreSubmission(ctx context.Context, s Submission) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO submissions (
			uuid, user_uuid, filename, submitted_at,
			public_score, private_score, total_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		s.UUID,
		s.UserUUID,
		s.Filename,
		s.SubmittedAt,
		s.PublicScore,
		s.PrivateScore,
		s.TotalScore,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// ListSubmissions implements Repo
func (r *pgRepo) ListSubmissions(ctx context.Context) ([]Submission, error) {
	return r.querySubmissions(ctx, `
		SELECT uuid, user_uuid, filename, submitted_at,
			public_score, private_score, total_score
		FROM submissions
		ORDER BY submitted_at
	`)
}

// ListUserSubmissions implements Repo
func (r *pgRepo) ListUserSubmissions(ctx context.Context, userUUID uuid.UUID) ([]Submission, error) {
	return r.querySubmissions(ctx, `
		SELECT uuid, user_uuid, filename, submitted_at,
			public_score, private_score, total_score
		FROM submissions
		WHERE user_uuid = $1
		ORDER BY submitted_at
	`, userUUID)
}

func (r *pgRepo) querySubmissions(ctx context.Context, query string, args ...any) ([]Submission, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subms []Submission
	for rows.Next() {
		var s Submission
		err := rows.Scan(
			&s.UUID,
			&s.UserUUID,
			&s.Filename,
			&s.SubmittedAt,
			&s.PublicScore,
			&s.PrivateScore,
			&s.TotalScore,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subms = append(subms, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subms, nil
}

// ReplaceSelections implements Repo. Delete-then-insert runs in one
// transaction so a concurrent leaderboard read never observes the gap.
func (r *pgRepo) ReplaceSelections(ctx context.Context, userUUID uuid.UUID, sels []Selection) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin selection tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM selections WHERE user_uuid = $1`, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete old selections: %w", err)
	}

	for _, sel := range sels {
		_, err = tx.Exec(ctx, `
			INSERT INTO selections (user_uuid, submission_uuid, rank, selected_at)
			VALUES ($1, $2, $3, $4)
		`,
			sel.UserUUID,
			sel.SubmissionUUID,
			sel.Rank,
			sel.SelectedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert selection: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit selection tx: %w", err)
	}
	return nil
}

// ListSelections implements Repo
func (r *pgRepo) ListSelections(ctx context.Context) ([]Selection, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_uuid, submission_uuid, rank, selected_at
		FROM selections
		ORDER BY user_uuid, rank
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query selections: %w", err)
	}
	defer rows.Close()

	var sels []Selection
	for rows.Next() {
		var sel Selection
		err := rows.Scan(
			&sel.UserUUID,
			&sel.SubmissionUUID,
			&sel.Rank,
			&sel.SelectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		sels = append(sels, sel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sels, nil
}
