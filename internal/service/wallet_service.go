package service

import (
	"context"
	"encoding/json"
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

const (
	defaultIdempotencyTTL = 24 * time.Hour

	descRecharge       = "Recharge du portefeuille"
	descDebit          = "Débit du portefeuille"
	descApplicationFee = "Frais de candidature"
	descRefund         = "Remboursement"
)

// WalletOptions tunes ledger behaviour.
type WalletOptions struct {
	// EnforceRechargeIdempotency replays the first result for a repeated reference.
	EnforceRechargeIdempotency bool
	IdempotencyTTL             time.Duration
}

// WalletServiceImpl implements ports.WalletService.
// Every mutation locks the artisan's balance row for the duration of one DB transaction.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.WalletLedgerRepository
	idempCache ports.IdempotencyCache
	settings   ports.SettingsService
	transactor ports.DBTransactor
	opts       WalletOptions
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. idempCache may be nil.
func NewWalletService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.WalletLedgerRepository,
	idempCache ports.IdempotencyCache,
	settings ports.SettingsService,
	transactor ports.DBTransactor,
	opts WalletOptions,
	log zerolog.Logger,
) *WalletServiceImpl {
	if opts.IdempotencyTTL <= 0 {
		opts.IdempotencyTTL = defaultIdempotencyTTL
	}
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		idempCache: idempCache,
		settings:   settings,
		transactor: transactor,
		opts:       opts,
		log:        log,
	}
}

// GetBalance returns the artisan's balance, or nil when the wallet was never initialised.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, artisanID uuid.UUID) (*domain.WalletBalance, error) {
	wallet, err := s.walletRepo.GetByArtisanID(ctx, artisanID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	return wallet, nil
}

// Recharge credits the wallet, creating it on first use.
func (s *WalletServiceImpl) Recharge(ctx context.Context, req ports.RechargeRequest) (*domain.RechargeResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	enforce := s.opts.EnforceRechargeIdempotency && req.Reference != ""
	idempKey := domain.BuildRechargeKey(req.ArtisanID, req.Reference)

	if enforce {
		// Layer 1: Redis
		if replay := s.cachedRecharge(ctx, idempKey); replay != nil {
			return replay, nil
		}
		// Layer 2: ledger
		replay, err := s.ledgerReplay(ctx, req)
		if err != nil {
			return nil, err
		}
		if replay != nil {
			s.cacheRecharge(ctx, idempKey, replay)
			return replay, nil
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetOrCreateForUpdate(ctx, dbTx, req.ArtisanID)
	if err != nil {
		metrics.ObserveWallet("recharge", "error", req.Amount)
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}

	if enforce {
		// Re-check under the row lock: a concurrent retry may have committed meanwhile.
		replay, err := s.ledgerReplay(ctx, req)
		if err != nil {
			return nil, err
		}
		if replay != nil {
			s.cacheRecharge(ctx, idempKey, replay)
			return replay, nil
		}
	}

	now := time.Now().UTC()
	wallet.Balance += req.Amount
	wallet.TotalRecharged += req.Amount
	wallet.UpdatedAt = now

	entry := &domain.WalletTransaction{
		ID:           uuid.New(),
		ArtisanID:    req.ArtisanID,
		Type:         domain.WalletEntryRecharge,
		Amount:       req.Amount,
		BalanceAfter: wallet.Balance,
		Description:  descRecharge,
		Reference:    req.Reference,
		Status:       domain.WalletEntryCompleted,
		CreatedAt:    now,
	}

	if err := s.persist(ctx, dbTx, wallet, entry); err != nil {
		metrics.ObserveWallet("recharge", "error", req.Amount)
		return nil, err
	}

	result := &domain.RechargeResult{TransactionID: entry.ID, NewBalance: wallet.Balance}
	if enforce {
		s.cacheRecharge(ctx, idempKey, result)
	}

	metrics.ObserveWallet("recharge", "ok", req.Amount)
	s.log.Info().
		Str("artisan_id", req.ArtisanID.String()).
		Str("entry_id", entry.ID.String()).
		Int64("amount", req.Amount).
		Int64("balance", wallet.Balance).
		Msg("wallet recharged")

	return result, nil
}

// Debit checks and decrements the balance atomically.
func (s *WalletServiceImpl) Debit(ctx context.Context, req ports.DebitRequest) (int64, error) {
	if req.Amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetForUpdate(ctx, dbTx, req.ArtisanID)
	if err != nil {
		metrics.ObserveWallet("debit", "error", req.Amount)
		return 0, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		metrics.ObserveWallet("debit", "insufficient", req.Amount)
		return 0, apperror.ErrInsufficientFunds(0, req.Amount)
	}

	// Business rule: sufficient funds
	if !wallet.Covers(req.Amount) {
		metrics.ObserveWallet("debit", "insufficient", req.Amount)
		return 0, apperror.ErrInsufficientFunds(wallet.Balance, req.Amount)
	}

	description := req.Description
	if description == "" {
		description = descDebit
	}

	now := time.Now().UTC()
	wallet.Balance -= req.Amount
	wallet.TotalSpent += req.Amount
	wallet.UpdatedAt = now

	entry := &domain.WalletTransaction{
		ID:           uuid.New(),
		ArtisanID:    req.ArtisanID,
		Type:         domain.WalletEntryDebit,
		Amount:       req.Amount,
		BalanceAfter: wallet.Balance,
		Description:  description,
		RelatedJobID: req.RelatedJobID,
		Status:       domain.WalletEntryCompleted,
		CreatedAt:    now,
	}

	if err := s.persist(ctx, dbTx, wallet, entry); err != nil {
		metrics.ObserveWallet("debit", "error", req.Amount)
		return 0, err
	}

	metrics.ObserveWallet("debit", "ok", req.Amount)
	s.log.Info().
		Str("artisan_id", req.ArtisanID.String()).
		Str("entry_id", entry.ID.String()).
		Int64("amount", req.Amount).
		Int64("balance", wallet.Balance).
		Msg("wallet debited")

	return wallet.Balance, nil
}

// CanApplyForJob is advisory: the fee debit itself re-checks the balance.
func (s *WalletServiceImpl) CanApplyForJob(ctx context.Context, artisanID uuid.UUID) (*ports.ApplyEligibility, error) {
	settings, err := s.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	wallet, err := s.GetBalance(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	var balance int64
	if wallet != nil {
		balance = wallet.Balance
	}
	return &ports.ApplyEligibility{
		CanApply: balance >= settings.ApplicationFee,
		Balance:  balance,
		Fee:      settings.ApplicationFee,
	}, nil
}

// ChargeApplicationFee debits the configured application fee for a job.
func (s *WalletServiceImpl) ChargeApplicationFee(ctx context.Context, artisanID, jobID uuid.UUID) (int64, error) {
	settings, err := s.settings.Current(ctx)
	if err != nil {
		return 0, err
	}
	return s.Debit(ctx, ports.DebitRequest{
		ArtisanID:    artisanID,
		Amount:       settings.ApplicationFee,
		RelatedJobID: &jobID,
		Description:  descApplicationFee,
	})
}

// Refund credits back spent funds; it cannot exceed total_spent.
func (s *WalletServiceImpl) Refund(ctx context.Context, req ports.WalletRefundRequest) (int64, error) {
	if req.Amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetForUpdate(ctx, dbTx, req.ArtisanID)
	if err != nil {
		metrics.ObserveWallet("refund", "error", req.Amount)
		return 0, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return 0, apperror.ErrWalletNotFound()
	}
	if req.Amount > wallet.TotalSpent {
		return 0, apperror.ErrRefundExceedsSpent()
	}

	description := descRefund
	if req.Reason != "" {
		description = descRefund + ": " + req.Reason
	}

	now := time.Now().UTC()
	wallet.Balance += req.Amount
	wallet.TotalSpent -= req.Amount
	wallet.UpdatedAt = now

	entry := &domain.WalletTransaction{
		ID:           uuid.New(),
		ArtisanID:    req.ArtisanID,
		Type:         domain.WalletEntryRefund,
		Amount:       req.Amount,
		BalanceAfter: wallet.Balance,
		Description:  description,
		RelatedJobID: req.RelatedJobID,
		Status:       domain.WalletEntryCompleted,
		CreatedAt:    now,
	}

	if err := s.persist(ctx, dbTx, wallet, entry); err != nil {
		metrics.ObserveWallet("refund", "error", req.Amount)
		return 0, err
	}

	metrics.ObserveWallet("refund", "ok", req.Amount)
	s.log.Info().
		Str("artisan_id", req.ArtisanID.String()).
		Int64("amount", req.Amount).
		Int64("balance", wallet.Balance).
		Msg("wallet refunded")

	return wallet.Balance, nil
}

// ListTransactions returns the artisan's ledger, newest first.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, artisanID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	entries, total, err := s.ledgerRepo.ListByArtisan(ctx, artisanID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list wallet transactions: %w", err))
	}
	return entries, total, nil
}

// persist writes the balance row and its ledger entry, then commits.
func (s *WalletServiceImpl) persist(ctx context.Context, tx pgx.Tx, wallet *domain.WalletBalance, entry *domain.WalletTransaction) error {
	if !wallet.Consistent() {
		return apperror.InternalError(fmt.Errorf("wallet %s would break balance invariant", wallet.ArtisanID))
	}
	if err := s.walletRepo.Update(ctx, tx, wallet); err != nil {
		return apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	if err := s.ledgerRepo.Append(ctx, tx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("append ledger entry: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *WalletServiceImpl) ledgerReplay(ctx context.Context, req ports.RechargeRequest) (*domain.RechargeResult, error) {
	prior, err := s.ledgerRepo.GetByReference(ctx, req.ArtisanID, req.Reference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if prior == nil || prior.Type != domain.WalletEntryRecharge {
		return nil, nil
	}
	s.log.Info().
		Str("artisan_id", req.ArtisanID.String()).
		Str("reference", req.Reference).
		Msg("duplicate recharge replayed")
	return &domain.RechargeResult{TransactionID: prior.ID, NewBalance: prior.BalanceAfter, Replayed: true}, nil
}

func (s *WalletServiceImpl) cachedRecharge(ctx context.Context, key string) *domain.RechargeResult {
	if s.idempCache == nil {
		return nil
	}
	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		return nil
	}
	if cached == nil {
		return nil
	}
	var result domain.RechargeResult
	if err := json.Unmarshal(cached, &result); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt idempotency cache entry")
		return nil
	}
	result.Replayed = true
	return &result
}

// cacheRecharge is best-effort; the ledger remains the source of truth.
func (s *WalletServiceImpl) cacheRecharge(ctx context.Context, key string, result *domain.RechargeResult) {
	if s.idempCache == nil {
		return
	}
	payload, err := json.Marshal(domain.RechargeResult{TransactionID: result.TransactionID, NewBalance: result.NewBalance})
	if err != nil {
		return
	}
	if err := s.idempCache.Set(ctx, key, payload, s.opts.IdempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}
