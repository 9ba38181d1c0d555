package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
	portsrepo "github.com/openvtt/shopledger/internal/core/ports/repositories"
	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
	"github.com/openvtt/shopledger/internal/middleware"
	"github.com/openvtt/shopledger/internal/utils/coinage"
)

// ledgerService loads ledgers, settles amounts against them and persists the
// result. The affordability check and the commit are logically one transaction,
// so settlements against the same owner are serialized with a per-owner lock;
// different owners proceed in parallel.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade

	mu         sync.Mutex
	ownerLocks map[string]*sync.Mutex
}

// NewLedgerService creates a new ledger settlement service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		ownerLocks: make(map[string]*sync.Mutex),
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) ownerLock(ownerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.ownerLocks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		s.ownerLocks[ownerID] = lock
	}
	return lock
}

// loadOrCreate fetches the owner's ledger, starting an empty one on first use.
func (s *ledgerService) loadOrCreate(ctx context.Context, ownerID string) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.FindLedgerByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			created := domain.NewLedger(ownerID)
			return &created, nil
		}
		return nil, fmt.Errorf("failed to load ledger for owner %s: %w", ownerID, err)
	}
	return ledger, nil
}

// GetLedger implements portssvc.LedgerReaderSvc
func (s *ledgerService) GetLedger(ctx context.Context, ownerID string) (*domain.Ledger, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner ID is required", apperrors.ErrValidation)
	}
	return s.loadOrCreate(ctx, ownerID)
}

// Settle implements portssvc.SettlementSvc
func (s *ledgerService) Settle(ctx context.Context, ownerID string, amountInBaseUnits int64) (*domain.Ledger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner ID is required", apperrors.ErrValidation)
	}

	lock := s.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.loadOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	settled, err := coinage.Settle(*ledger, amountInBaseUnits)
	if err != nil {
		if errors.Is(err, apperrors.ErrInternalInconsistency) {
			// A reconciliation failure is a bug, not a business rejection.
			logger.Error("Settlement reconciliation failed",
				slog.String("owner_id", ownerID),
				slog.Int64("amount", amountInBaseUnits),
				slog.String("error", err.Error()))
		} else {
			logger.Warn("Settlement rejected",
				slog.String("owner_id", ownerID),
				slog.Int64("amount", amountInBaseUnits),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	if err := s.ledgerRepo.SaveLedger(ctx, settled); err != nil {
		return nil, fmt.Errorf("failed to persist settled ledger for owner %s: %w", ownerID, err)
	}

	logger.Info("Settlement committed",
		slog.String("owner_id", ownerID),
		slog.Int64("amount", amountInBaseUnits),
		slog.Int64("total_after", settled.Total()))
	return &settled, nil
}
