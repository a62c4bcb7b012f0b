package subm

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inMemRepo struct {
	mu    sync.RWMutex
	subms []Submission
	sels  map[uuid.UUID][]Selection
}

func NewInMemRepo() Repo {
	return &inMemRepo{
		sels: make(map[uuid.UUID][]Selection),
	}
}

// StoreSubmission implements Repo
func (r *inMemRepo) StoreSubmission(ctx context.Context, s Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms = append(r.subms, s)
	return nil
}

// ListSubmissions implements Repo
func (r *inMemRepo) ListSubmissions(ctx context.Context) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Submission, len(r.subms))
	copy(res, r.subms)
	return res, nil
}

// ListUserSubmissions implements Repo
func (r *inMemRepo) ListUserSubmissions(ctx context.Context, userUUID uuid.UUID) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Submission
	for _, s := range r.subms {
		if s.UserUUID == userUUID {
			res = append(res, s)
		}
	}
	return res, nil
}

// ReplaceSelections implements Repo. The whole set swaps under one lock.
func (r *inMemRepo) ReplaceSelections(ctx context.Context, userUUID uuid.UUID, sels []Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	replacement := make([]Selection, len(sels))
	copy(replacement, sels)
	r.sels[userUUID] = replacement
	return nil
}

// ListSelections implements Repo
func (r *inMemRepo) ListSelections(ctx context.Context) ([]Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var res []Selection
	for _, sels := range r.sels {
		res = append(res, sels...)
	}
	return res, nil
}
