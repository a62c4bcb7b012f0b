package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the public view of an account.
type User struct {
	UUID     uuid.UUID
	Username string
	Email    string
}

// Row is the persisted account record, credential hash included.
type Row struct {
	UUID      uuid.UUID
	Username  string
	Email     string
	BcryptPwd string
	CreatedAt time.Time
}

// Repo persists user accounts.
type Repo interface {
	Store(ctx context.Context, row Row) error
	List(ctx context.Context) ([]Row, error)
}

type UserSrvc struct {
	repo Repo
}

func NewUserSrvc(repo Repo) *UserSrvc {
	return &UserSrvc{repo: repo}
}

// ListUsers returns all accounts without credentials, for leaderboard joins.
func (s *UserSrvc) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	users := make([]User, len(rows))
	for i, row := range rows {
		users[i] = User{UUID: row.UUID, Username: row.Username, Email: row.Email}
	}
	return users, nil
}
