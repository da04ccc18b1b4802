package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// EscrowServiceImpl implements ports.EscrowService.
type EscrowServiceImpl struct {
	escrowRepo ports.EscrowRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewEscrowService creates a new EscrowServiceImpl.
func NewEscrowService(
	escrowRepo ports.EscrowRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *EscrowServiceImpl {
	return &EscrowServiceImpl{escrowRepo: escrowRepo, txRepo: txRepo, transactor: transactor, log: log}
}

// CheckParty allows actorID if it paid or received any of the contract's
// payments. A contract with no payments has no parties yet.
func (s *EscrowServiceImpl) CheckParty(ctx context.Context, actorID, contractID uuid.UUID) error {
	txns, err := s.txRepo.ListByContract(ctx, contractID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list contract payments: %w", err))
	}
	for _, t := range txns {
		if t.PayerID == actorID || t.ReceiverID == actorID {
			return nil
		}
	}
	s.log.Warn().
		Str("actor_id", actorID.String()).
		Str("contract_id", contractID.String()).
		Msg("escrow access by non-party refused")
	return apperror.ErrForbidden()
}

// Open creates the contract's escrow account. An account implicitly created
// by an earlier deposit (total unknown) adopts the given total instead.
func (s *EscrowServiceImpl) Open(ctx context.Context, contractID uuid.UUID, totalAmount int64) (*domain.EscrowAccount, error) {
	if totalAmount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	existing, err := s.escrowRepo.GetByContractIDForUpdate(ctx, dbTx, contractID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock escrow: %w", err))
	}

	var account *domain.EscrowAccount
	switch {
	case existing != nil && existing.TotalAmount == 0 && !existing.IsClosed():
		existing.TotalAmount = totalAmount
		existing.UpdatedAt = time.Now().UTC()
		if err := s.escrowRepo.Update(ctx, dbTx, existing); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update escrow: %w", err))
		}
		account = existing
	case existing != nil:
		return nil, apperror.ErrEscrowExists()
	default:
		account = newEscrowAccount(contractID, totalAmount)
		created, err := s.escrowRepo.Create(ctx, dbTx, account)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create escrow: %w", err))
		}
		if !created {
			return nil, apperror.ErrEscrowExists()
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("contract_id", contractID.String()).
		Int64("total_amount", totalAmount).
		Msg("escrow account opened")
	return account, nil
}

// Get returns the contract's escrow account.
func (s *EscrowServiceImpl) Get(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	account, err := s.escrowRepo.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get escrow: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("escrow account")
	}
	return account, nil
}

// Release pays held funds out to the artisan.
func (s *EscrowServiceImpl) Release(ctx context.Context, contractID uuid.UUID, amount int64) (*domain.EscrowAccount, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.mutate(ctx, contractID, "release", func(a *domain.EscrowAccount) error {
		return a.Release(amount)
	})
}

// Dispute freezes the account.
func (s *EscrowServiceImpl) Dispute(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	return s.mutate(ctx, contractID, "dispute", (*domain.EscrowAccount).OpenDispute)
}

// Close ends the account administratively.
func (s *EscrowServiceImpl) Close(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	return s.mutate(ctx, contractID, "close", (*domain.EscrowAccount).Close)
}

func (s *EscrowServiceImpl) mutate(ctx context.Context, contractID uuid.UUID, op string, fn func(*domain.EscrowAccount) error) (*domain.EscrowAccount, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.escrowRepo.GetByContractIDForUpdate(ctx, dbTx, contractID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock escrow: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("escrow account")
	}

	if err := fn(account); err != nil {
		return nil, escrowError(account, err)
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.escrowRepo.Update(ctx, dbTx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update escrow: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("contract_id", contractID.String()).
		Str("op", op).
		Str("status", string(account.Status)).
		Int64("held", account.AmountHeld).
		Msg("escrow updated")
	return account, nil
}

func newEscrowAccount(contractID uuid.UUID, totalAmount int64) *domain.EscrowAccount {
	now := time.Now().UTC()
	return &domain.EscrowAccount{
		ID:          uuid.New(),
		ContractID:  contractID,
		TotalAmount: totalAmount,
		Status:      domain.EscrowStatusOuvert,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// lockOrCreateEscrow locks the contract's account inside dbTx, creating an
// ouvert account with an unknown total when none exists yet.
func lockOrCreateEscrow(ctx context.Context, repo ports.EscrowRepository, dbTx pgx.Tx, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	account, err := repo.GetByContractIDForUpdate(ctx, dbTx, contractID)
	if err != nil || account != nil {
		return account, err
	}
	account = newEscrowAccount(contractID, 0)
	created, err := repo.Create(ctx, dbTx, account)
	if err != nil {
		return nil, err
	}
	if created {
		return account, nil
	}
	// Lost a creation race; the winner's row is now visible.
	return repo.GetByContractIDForUpdate(ctx, dbTx, contractID)
}

func escrowError(account *domain.EscrowAccount, err error) error {
	switch {
	case errors.Is(err, domain.ErrEscrowReleaseExceedsHeld):
		return apperror.ErrEscrowReleaseExceedsHeld()
	case errors.Is(err, domain.ErrEscrowClosed),
		errors.Is(err, domain.ErrEscrowNotFunded),
		errors.Is(err, domain.ErrEscrowReversalExceeds):
		return apperror.ErrEscrowState(string(account.Status))
	}
	return apperror.InternalError(err)
}
