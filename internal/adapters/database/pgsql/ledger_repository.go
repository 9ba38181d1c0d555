package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
	portsrepo "github.com/openvtt/shopledger/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates a new repository for ledger data.
func NewPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

// FindLedgerByOwner retrieves all denomination counts for one owner.
func (r *PgxLedgerRepository) FindLedgerByOwner(ctx context.Context, ownerID string) (*domain.Ledger, error) {
	query := `
		SELECT denomination, quantity, created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_entries
		WHERE owner_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	ledger := domain.NewLedger(ownerID)
	found := false
	for rows.Next() {
		var denomination string
		var quantity int64
		if err := rows.Scan(&denomination, &quantity,
			&ledger.CreatedAt, &ledger.CreatedBy,
			&ledger.LastUpdatedAt, &ledger.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row for owner %s: %w", ownerID, err)
		}
		symbol := domain.Denomination(denomination)
		if !domain.IsValidDenomination(symbol) {
			return nil, fmt.Errorf("%w: stored ledger row has unknown denomination %q", apperrors.ErrInternalInconsistency, denomination)
		}
		ledger.Quantities[symbol] = quantity
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading ledger rows for owner %s: %w", ownerID, err)
	}
	if !found {
		return nil, apperrors.ErrNotFound
	}
	return &ledger, nil
}

// SaveLedger upserts every denomination count of the ledger inside one database
// transaction, so no reader ever observes a partially updated holding.
func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	query := `
		INSERT INTO ledger_entries (owner_id, denomination, quantity, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id, denomination) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	now := time.Now().UTC()
	for _, info := range domain.Denominations {
		_, err = tx.Exec(ctx, query,
			ledger.OwnerID,
			string(info.Symbol),
			ledger.Quantities[info.Symbol],
			now,
			ledger.LastUpdatedBy,
			now,
			ledger.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert ledger row %s/%s: %w", ledger.OwnerID, info.Symbol, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ledger for owner %s: %w", ledger.OwnerID, err)
	}
	return nil
}
