package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recmarket/internal/dbx"
	"github.com/dmitrijs2005/recmarket/internal/server/models"
)

// PostgresRepository keeps login flags in the sessions table over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SetState(ctx context.Context, principal string, state models.SessionState) error {
	query :=
		`INSERT INTO sessions (principal, logged_in, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (principal) DO UPDATE
		 SET logged_in = EXCLUDED.logged_in, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, principal, bool(state)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) State(ctx context.Context, principal string) (models.SessionState, error) {
	query := `SELECT logged_in FROM sessions WHERE principal = $1`

	var loggedIn bool
	err := r.db.QueryRowContext(ctx, query, principal).Scan(&loggedIn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LoggedOut, nil
		}
		return models.LoggedOut, fmt.Errorf("db error: %w", err)
	}

	return models.SessionState(loggedIn), nil
}
