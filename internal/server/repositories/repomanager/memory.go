package repomanager

import (
	"context"

	"github.com/dmitrijs2005/recmarket/internal/server/repositories/certificates"
	"github.com/dmitrijs2005/recmarket/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/recmarket/internal/timex"
)

// InMemoryRepositoryManager keeps all state for the lifetime of the process.
type InMemoryRepositoryManager struct {
	certificates *certificates.MemoryRepository
	sessions     *sessions.MemoryRepository
}

func NewInMemoryRepositoryManager(clock timex.Clock) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		certificates: certificates.NewMemoryRepository(clock),
		sessions:     sessions.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Certificates() certificates.Repository {
	return m.certificates
}

func (m *InMemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

// RunMigrations is a no-op for the memory backend.
func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
