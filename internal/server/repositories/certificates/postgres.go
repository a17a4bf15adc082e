package certificates

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recmarket/internal/dbx"
	"github.com/dmitrijs2005/recmarket/internal/server/models"
	"github.com/dmitrijs2005/recmarket/internal/timex"
)

// appendLockKey identifies the advisory lock that serializes appends.
const appendLockKey int64 = 0x52454331

// PostgresRepository stores certificates in the certificates table.
// Appends run in a transaction holding appendLockKey, so ids computed as
// MAX(id)+1 are gapless and created_at never decreases.
type PostgresRepository struct {
	db    *sql.DB
	clock timex.Clock
}

func NewPostgresRepository(db *sql.DB, clock timex.Clock) *PostgresRepository {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &PostgresRepository{db: db, clock: clock}
}

func (r *PostgresRepository) Append(ctx context.Context, draft *models.CertificateDraft) (*models.Certificate, error) {
	var cert *models.Certificate

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := dbx.AdvisoryXactLock(ctx, tx, appendLockKey); err != nil {
			return err
		}

		var nextID, lastCreatedAt int64
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(id) + 1, 0), COALESCE(MAX(created_at), 0) FROM certificates`,
		).Scan(&nextID, &lastCreatedAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		createdAt := timex.NextStamp(r.clock.Now(), lastCreatedAt)

		query :=
			`INSERT INTO certificates (id, energy_source, details, price, image_url, owner, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`

		_, err = tx.ExecContext(ctx, query,
			nextID, draft.EnergySource, draft.Details, draft.Price, draft.ImageURL, ownerToNull(draft.Owner), createdAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		cert = &models.Certificate{
			ID:           uint64(nextID),
			EnergySource: draft.EnergySource,
			Details:      draft.Details,
			Price:        draft.Price,
			ImageURL:     draft.ImageURL,
			Owner:        cloneOwner(draft.Owner),
			CreatedAt:    createdAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cert, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Certificate, error) {
	query :=
		`SELECT id, energy_source, details, price, image_url, owner, created_at
		 FROM certificates
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Certificate, 0)
	for rows.Next() {
		var (
			id    int64
			owner sql.NullString
			c     models.Certificate
		)
		if err := rows.Scan(&id, &c.EnergySource, &c.Details, &c.Price, &c.ImageURL, &owner, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		c.ID = uint64(id)
		if owner.Valid {
			c.Owner = &owner.String
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func ownerToNull(owner *string) sql.NullString {
	if owner == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *owner, Valid: true}
}
