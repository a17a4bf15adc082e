// Package repomanager selects the storage backend and vends the repositories
// the registry needs.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/recmarket/internal/server/repositories/certificates"
	"github.com/dmitrijs2005/recmarket/internal/server/repositories/sessions"
)

type RepositoryManager interface {
	Certificates() certificates.Repository
	Sessions() sessions.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
