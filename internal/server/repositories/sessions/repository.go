// Package sessions stores the per-principal login flag.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/recmarket/internal/server/models"
)

type Repository interface {
	// SetState records the login flag for principal. Setting the current
	// state again is a no-op.
	SetState(ctx context.Context, principal string, state models.SessionState) error
	// State returns the login flag for principal; unknown principals are
	// logged out.
	State(ctx context.Context, principal string) (models.SessionState, error)
}
