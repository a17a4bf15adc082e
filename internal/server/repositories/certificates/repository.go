// Package certificates stores the append-only certificate catalog.
//
// Implementations must make Append atomic: the next identifier, the
// creation stamp and the stored record are produced in one critical
// section, so concurrent callers never share an identifier and readers
// never observe a half-written record.
package certificates

import (
	"context"

	"github.com/dmitrijs2005/recmarket/internal/server/models"
)

type Repository interface {
	// Append stores a new certificate built from draft and returns it with
	// its assigned ID and CreatedAt.
	Append(ctx context.Context, draft *models.CertificateDraft) (*models.Certificate, error)
	// List returns a snapshot of every certificate in ascending ID order.
	List(ctx context.Context) ([]*models.Certificate, error)
}
