package sessions

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recmarket/internal/server/models"
)

// MemoryRepository keeps only logged-in principals; absence means logged out.
type MemoryRepository struct {
	mu       sync.RWMutex
	loggedIn map[string]struct{}
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{loggedIn: make(map[string]struct{})}
}

func (r *MemoryRepository) SetState(ctx context.Context, principal string, state models.SessionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if state == models.LoggedIn {
		r.loggedIn[principal] = struct{}{}
	} else {
		delete(r.loggedIn, principal)
	}
	return nil
}

func (r *MemoryRepository) State(ctx context.Context, principal string) (models.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return models.LoggedOut, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.loggedIn[principal]
	return models.SessionState(ok), nil
}
