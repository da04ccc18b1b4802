package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/metrics"
	"builderhub-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// RecordServiceImpl implements ports.RecordService.
// A status change and the escrow movement it implies commit in one DB transaction.
type RecordServiceImpl struct {
	txRepo     ports.TransactionRepository
	escrowRepo ports.EscrowRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewRecordService creates a new RecordServiceImpl.
func NewRecordService(
	txRepo ports.TransactionRepository,
	escrowRepo ports.EscrowRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *RecordServiceImpl {
	return &RecordServiceImpl{
		txRepo:     txRepo,
		escrowRepo: escrowRepo,
		transactor: transactor,
		log:        log,
	}
}

// Create persists a new transaction in en_attente.
func (s *RecordServiceImpl) Create(ctx context.Context, req ports.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.Type.Valid() {
		return nil, apperror.Validation("Type de transaction invalide")
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:              uuid.New(),
		ContractID:      req.ContractID,
		PayerID:         req.PayerID,
		ReceiverID:      req.ReceiverID,
		PaymentMethodID: req.PaymentMethodID,
		Amount:          req.Amount,
		TransactionType: req.Type,
		Status:          domain.TransactionStatusEnAttente,
		Provider:        req.Provider,
		Metadata:        req.Metadata,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.PaymentTransitions.WithLabelValues(string(txn.Status)).Inc()
	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("contract_id", txn.ContractID.String()).
		Str("type", string(txn.TransactionType)).
		Int64("amount", txn.Amount).
		Msg("transaction created")
	return txn, nil
}

// UpdateStatus applies one state-machine transition.
func (s *RecordServiceImpl) UpdateStatus(ctx context.Context, upd domain.StatusUpdate) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.txRepo.GetByIDForUpdate(ctx, dbTx, upd.TransactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	if !domain.CanTransition(txn.Status, upd.Status) {
		return nil, apperror.ErrInvalidTransition(string(txn.Status), string(upd.Status))
	}

	now := time.Now().UTC()
	txn.Status = upd.Status
	txn.UpdatedAt = now
	if upd.ProviderTransactionID != nil {
		txn.ProviderTransactionID = upd.ProviderTransactionID
	}
	if upd.ProviderReference != nil {
		txn.ProviderReference = upd.ProviderReference
	}
	if upd.CheckoutURL != nil {
		txn.CheckoutURL = upd.CheckoutURL
	}
	if upd.FailureReason != nil {
		txn.FailureReason = upd.FailureReason
	}
	if upd.Status == domain.TransactionStatusComplete {
		txn.ProcessedAt = &now
	}

	if err := s.syncEscrow(ctx, dbTx, txn); err != nil {
		return nil, err
	}

	if err := s.txRepo.Update(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update transaction: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	metrics.PaymentTransitions.WithLabelValues(string(txn.Status)).Inc()
	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("status", string(txn.Status)).
		Bool("escrow_funded", txn.Metadata.EscrowFunded).
		Msg("transaction status updated")
	return txn, nil
}

// syncEscrow funds the escrow when an acompte is accepted, confirms the
// deposit when the payment completes and reverses it if the acompte fails or
// is cancelled. Releases only draw on confirmed funds, so a reversal never
// conflicts with money already paid out. The escrow side never blocks the
// payment's own status: the provider has already moved the money.
func (s *RecordServiceImpl) syncEscrow(ctx context.Context, dbTx pgx.Tx, txn *domain.Transaction) error {
	if !txn.TransactionType.FundsEscrow() {
		return nil
	}

	funded := txn.Metadata.EscrowFunded
	reversing := txn.Status == domain.TransactionStatusEchoue || txn.Status == domain.TransactionStatusAnnule
	var apply func(*domain.EscrowAccount) error
	switch txn.Status {
	case domain.TransactionStatusTraitement:
		if funded {
			return nil
		}
		apply = func(a *domain.EscrowAccount) error { return a.Deposit(txn.Amount) }
	case domain.TransactionStatusComplete:
		if !funded && txn.Metadata.EscrowRejected {
			return nil
		}
		apply = func(a *domain.EscrowAccount) error {
			if !funded {
				if err := a.Deposit(txn.Amount); err != nil {
					return err
				}
			}
			return a.Confirm(txn.Amount)
		}
	case domain.TransactionStatusEchoue, domain.TransactionStatusAnnule:
		if !funded {
			return nil
		}
		apply = func(a *domain.EscrowAccount) error { return a.ReverseDeposit(txn.Amount) }
	default:
		return nil
	}

	account, err := lockOrCreateEscrow(ctx, s.escrowRepo, dbTx, txn.ContractID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock escrow: %w", err))
	}
	if account == nil {
		return apperror.InternalError(fmt.Errorf("escrow for contract %s vanished", txn.ContractID))
	}

	short := false
	switch err := apply(account); {
	case err == nil:
	case errors.Is(err, domain.ErrEscrowClosed):
		txn.Metadata.EscrowRejected = true
		s.log.Error().
			Str("tx_id", txn.ID.String()).
			Str("contract_id", txn.ContractID.String()).
			Str("escrow_status", string(account.Status)).
			Int64("amount", txn.Amount).
			Msg("escrow closed, payment recorded without deposit")
		return nil
	case reversing && errors.Is(err, domain.ErrEscrowReversalExceeds):
		short = true
		account.Status = domain.EscrowStatusDispute
		s.log.Error().
			Str("tx_id", txn.ID.String()).
			Str("contract_id", txn.ContractID.String()).
			Int64("amount", txn.Amount).
			Msg("escrow reversal short, account moved to dispute")
	default:
		return escrowError(account, err)
	}

	account.UpdatedAt = txn.UpdatedAt
	if err := s.escrowRepo.Update(ctx, dbTx, account); err != nil {
		return apperror.InternalError(fmt.Errorf("update escrow: %w", err))
	}

	switch {
	case reversing && !short:
		txn.Metadata.EscrowFunded = false
	case !funded:
		txn.Metadata.EscrowFunded = true
		metrics.EscrowDeposits.Add(float64(txn.Amount))
	}
	return nil
}

// Get returns one transaction.
func (s *RecordServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	return txn, nil
}

// ListByContract returns a contract's payments, newest first.
func (s *RecordServiceImpl) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Transaction, error) {
	list, err := s.txRepo.ListByContract(ctx, contractID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return list, nil
}
