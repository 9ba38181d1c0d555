package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
	portsrepo "github.com/openvtt/shopledger/internal/core/ports/repositories"
)

type PgxPricingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPricingRepository creates a new repository for the pricing configuration.
func NewPgxPricingRepository(pool *pgxpool.Pool) portsrepo.PricingRepositoryFacade {
	return &PgxPricingRepository{pool: pool}
}

// FindPricingConfig retrieves the single pricing configuration row.
func (r *PgxPricingRepository) FindPricingConfig(ctx context.Context) (*domain.PricingConfig, error) {
	query := `
		SELECT sell_ordinary_multiplier, sell_magic_multiplier,
		       buy_ordinary_multiplier, buy_magic_multiplier, buy_treasure_multiplier,
		       repair_metal_per_point, repair_leather_per_point, repair_other_per_point,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM pricing_config
		WHERE id = 1;
	`
	var config domain.PricingConfig
	err := r.pool.QueryRow(ctx, query).Scan(
		&config.SellOrdinaryMultiplier,
		&config.SellMagicMultiplier,
		&config.BuyOrdinaryMultiplier,
		&config.BuyMagicMultiplier,
		&config.BuyTreasureMultiplier,
		&config.RepairMetalPerPoint,
		&config.RepairLeatherPerPoint,
		&config.RepairOtherPerPoint,
		&config.CreatedAt,
		&config.CreatedBy,
		&config.LastUpdatedAt,
		&config.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query pricing config: %w", err)
	}
	return &config, nil
}

// SavePricingConfig upserts the single pricing configuration row.
func (r *PgxPricingRepository) SavePricingConfig(ctx context.Context, config domain.PricingConfig) error {
	query := `
		INSERT INTO pricing_config (
			id, sell_ordinary_multiplier, sell_magic_multiplier,
			buy_ordinary_multiplier, buy_magic_multiplier, buy_treasure_multiplier,
			repair_metal_per_point, repair_leather_per_point, repair_other_per_point,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			sell_ordinary_multiplier = EXCLUDED.sell_ordinary_multiplier,
			sell_magic_multiplier = EXCLUDED.sell_magic_multiplier,
			buy_ordinary_multiplier = EXCLUDED.buy_ordinary_multiplier,
			buy_magic_multiplier = EXCLUDED.buy_magic_multiplier,
			buy_treasure_multiplier = EXCLUDED.buy_treasure_multiplier,
			repair_metal_per_point = EXCLUDED.repair_metal_per_point,
			repair_leather_per_point = EXCLUDED.repair_leather_per_point,
			repair_other_per_point = EXCLUDED.repair_other_per_point,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		config.SellOrdinaryMultiplier,
		config.SellMagicMultiplier,
		config.BuyOrdinaryMultiplier,
		config.BuyMagicMultiplier,
		config.BuyTreasureMultiplier,
		config.RepairMetalPerPoint,
		config.RepairLeatherPerPoint,
		config.RepairOtherPerPoint,
		config.CreatedAt,
		config.CreatedBy,
		config.LastUpdatedAt,
		config.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save pricing config: %w", err)
	}
	return nil
}
