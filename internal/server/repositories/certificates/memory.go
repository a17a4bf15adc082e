package certificates

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recmarket/internal/server/models"
	"github.com/dmitrijs2005/recmarket/internal/timex"
)

// MemoryRepository keeps certificates in process memory. Identifiers start
// at 0. A single write lock covers id allocation, stamping and append;
// readers copy the slice under the read lock.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  []models.Certificate
	nextID uint64
	clock  *timex.LogicalClock
}

func NewMemoryRepository(clock timex.Clock) *MemoryRepository {
	return &MemoryRepository{clock: timex.NewLogicalClock(clock)}
}

func (r *MemoryRepository) Append(ctx context.Context, draft *models.CertificateDraft) (*models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cert := models.Certificate{
		ID:           r.nextID,
		EnergySource: draft.EnergySource,
		Details:      draft.Details,
		Price:        draft.Price,
		ImageURL:     draft.ImageURL,
		Owner:        cloneOwner(draft.Owner),
		CreatedAt:    r.clock.Tick(),
	}
	r.items = append(r.items, cert)
	r.nextID++

	return copyCertificate(cert), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stored elements are never modified after append, so the capped
	// slice header is a stable snapshot once the read lock is released.
	r.mu.RLock()
	snapshot := r.items[:len(r.items):len(r.items)]
	r.mu.RUnlock()

	out := make([]*models.Certificate, 0, len(snapshot))
	for _, c := range snapshot {
		out = append(out, copyCertificate(c))
	}
	return out, nil
}

// size returns the number of stored certificates.
func (r *MemoryRepository) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func copyCertificate(c models.Certificate) *models.Certificate {
	c.Owner = cloneOwner(c.Owner)
	return &c
}

func cloneOwner(owner *string) *string {
	if owner == nil {
		return nil
	}
	o := *owner
	return &o
}
