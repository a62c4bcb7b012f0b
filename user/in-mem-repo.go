package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inMemRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]Row
	order []uuid.UUID
}

func NewInMemRepo() Repo {
	return &inMemRepo{
		users: make(map[uuid.UUID]Row),
	}
}

// Store implements Repo
func (r *inMemRepo) Store(ctx context.Context, row Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[row.UUID]; !exists {
		r.order = append(r.order, row.UUID)
	}
	r.users[row.UUID] = row
	return nil
}

// List implements Repo
func (r *inMemRepo) List(ctx context.Context) ([]Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]Row, 0, len(r.order))
	for _, id := range r.order {
		rows = append(rows, r.users[id])
	}
	return rows, nil
}
