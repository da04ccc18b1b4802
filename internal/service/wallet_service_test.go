package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/core/ports/mocks"
	"builderhub-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type walletTestDeps struct {
	svc        *WalletServiceImpl
	walletRepo *mocks.MockWalletRepository
	ledgerRepo *mocks.MockWalletLedgerRepository
	idempCache *mocks.MockIdempotencyCache
	transactor *mocks.MockDBTransactor
	tx         *mockTx
}

func setupWalletService(t *testing.T, enforce bool) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		ledgerRepo: mocks.NewMockWalletLedgerRepository(ctrl),
		idempCache: mocks.NewMockIdempotencyCache(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		tx:         &mockTx{},
	}
	d.svc = NewWalletService(
		d.walletRepo, d.ledgerRepo, d.idempCache,
		NewSettingsService(nil, testDefaults, zerolog.Nop()),
		d.transactor,
		WalletOptions{EnforceRechargeIdempotency: enforce},
		zerolog.Nop(),
	)
	return d
}

// ==================== Recharge ====================

func TestWalletService_Recharge_FirstRecharge(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()
	key := domain.BuildRechargeKey(artisanID, "RCH-001")

	var appended *domain.WalletTransaction
	var updated domain.WalletBalance

	d.idempCache.EXPECT().Get(ctx, key).Return(nil, nil)
	d.ledgerRepo.EXPECT().GetByReference(ctx, artisanID, "RCH-001").Return(nil, nil).Times(2)
	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetOrCreateForUpdate(ctx, d.tx, artisanID).Return(&domain.WalletBalance{ArtisanID: artisanID}, nil)
	d.walletRepo.EXPECT().Update(ctx, d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.WalletBalance) error {
			updated = *w
			return nil
		})
	d.ledgerRepo.EXPECT().Append(ctx, d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.WalletTransaction) error {
			appended = e
			return nil
		})
	d.idempCache.EXPECT().Set(ctx, key, gomock.Any(), defaultIdempotencyTTL).Return(nil)

	result, err := d.svc.Recharge(ctx, ports.RechargeRequest{ArtisanID: artisanID, Amount: 5000, Reference: "RCH-001"})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), result.NewBalance)
	assert.False(t, result.Replayed)
	assert.True(t, d.tx.committed)

	assert.Equal(t, int64(5000), updated.Balance)
	assert.Equal(t, int64(5000), updated.TotalRecharged)
	assert.True(t, updated.Consistent())

	require.NotNil(t, appended)
	assert.Equal(t, domain.WalletEntryRecharge, appended.Type)
	assert.Equal(t, int64(5000), appended.BalanceAfter)
	assert.Equal(t, domain.WalletEntryCompleted, appended.Status)
	assert.Equal(t, "RCH-001", appended.Reference)
}

func TestWalletService_Recharge_ReplayFromCache(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()
	entryID := uuid.New()
	key := domain.BuildRechargeKey(artisanID, "RCH-002")

	cached, _ := json.Marshal(domain.RechargeResult{TransactionID: entryID, NewBalance: 7000})
	d.idempCache.EXPECT().Get(ctx, key).Return(cached, nil)

	result, err := d.svc.Recharge(ctx, ports.RechargeRequest{ArtisanID: artisanID, Amount: 2000, Reference: "RCH-002"})
	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, entryID, result.TransactionID)
	assert.Equal(t, int64(7000), result.NewBalance)
}

func TestWalletService_Recharge_ReplayFromLedger(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()
	entryID := uuid.New()
	key := domain.BuildRechargeKey(artisanID, "RCH-003")

	d.idempCache.EXPECT().Get(ctx, key).Return(nil, errors.New("redis down"))
	d.ledgerRepo.EXPECT().GetByReference(ctx, artisanID, "RCH-003").Return(&domain.WalletTransaction{
		ID:           entryID,
		Type:         domain.WalletEntryRecharge,
		Amount:       3000,
		BalanceAfter: 3000,
	}, nil)
	d.idempCache.EXPECT().Set(ctx, key, gomock.Any(), defaultIdempotencyTTL).Return(nil)

	result, err := d.svc.Recharge(ctx, ports.RechargeRequest{ArtisanID: artisanID, Amount: 3000, Reference: "RCH-003"})
	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, int64(3000), result.NewBalance)
}

func TestWalletService_Recharge_NotEnforcedAppliesTwice(t *testing.T) {
	d := setupWalletService(t, false)
	ctx := context.Background()
	artisanID := uuid.New()
	wallet := &domain.WalletBalance{ArtisanID: artisanID}

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil).Times(2)
	d.walletRepo.EXPECT().GetOrCreateForUpdate(ctx, d.tx, artisanID).Return(wallet, nil).Times(2)
	d.walletRepo.EXPECT().Update(ctx, d.tx, wallet).Return(nil).Times(2)
	d.ledgerRepo.EXPECT().Append(ctx, d.tx, gomock.Any()).Return(nil).Times(2)

	req := ports.RechargeRequest{ArtisanID: artisanID, Amount: 1000, Reference: "SAME"}
	_, err := d.svc.Recharge(ctx, req)
	require.NoError(t, err)
	result, err := d.svc.Recharge(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), result.NewBalance)
}

func TestWalletService_Recharge_InvalidAmount(t *testing.T) {
	d := setupWalletService(t, true)

	for _, amount := range []int64{0, -100} {
		result, err := d.svc.Recharge(context.Background(), ports.RechargeRequest{ArtisanID: uuid.New(), Amount: amount})
		assert.Nil(t, result)
		assertAppError(t, err, "PAY_002")
	}
}

func TestWalletService_Recharge_StorageFailureRollsBack(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetOrCreateForUpdate(ctx, d.tx, artisanID).Return(&domain.WalletBalance{ArtisanID: artisanID}, nil)
	d.walletRepo.EXPECT().Update(ctx, d.tx, gomock.Any()).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, d.tx, gomock.Any()).Return(errors.New("disk full"))

	// Empty reference skips idempotency lookups.
	_, err := d.svc.Recharge(ctx, ports.RechargeRequest{ArtisanID: artisanID, Amount: 1000})
	assertAppError(t, err, "SYS_001")
	assert.False(t, d.tx.committed)
}

// ==================== Debit ====================

func TestWalletService_Debit_Success(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()
	jobID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, d.tx, artisanID).Return(&domain.WalletBalance{
		ArtisanID: artisanID, Balance: 5000, TotalRecharged: 5000,
	}, nil)
	d.walletRepo.EXPECT().Update(ctx, d.tx, gomock.Any()).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.WalletTransaction) error {
			assert.Equal(t, domain.WalletEntryDebit, e.Type)
			assert.Equal(t, int64(4000), e.BalanceAfter)
			assert.Equal(t, &jobID, e.RelatedJobID)
			return nil
		})

	balance, err := d.svc.Debit(ctx, ports.DebitRequest{ArtisanID: artisanID, Amount: 1000, RelatedJobID: &jobID})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), balance)
	assert.True(t, d.tx.committed)
}

func TestWalletService_Debit_InsufficientFunds(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, d.tx, artisanID).Return(&domain.WalletBalance{
		ArtisanID: artisanID, Balance: 500, TotalRecharged: 500,
	}, nil)

	jobID := uuid.New()
	_, err := d.svc.Debit(ctx, ports.DebitRequest{ArtisanID: artisanID, Amount: 1000, RelatedJobID: &jobID, Description: "application fee"})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
	assert.Equal(t, int64(500), appErr.Details["current_balance"])
	assert.Equal(t, int64(1000), appErr.Details["required"])
	assert.False(t, d.tx.committed)
}

func TestWalletService_Debit_NoWallet(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, d.tx, artisanID).Return(nil, nil)

	_, err := d.svc.Debit(ctx, ports.DebitRequest{ArtisanID: artisanID, Amount: 1000})
	assertAppError(t, err, "WAL_001")
}

func TestWalletService_Debit_LockError(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, d.tx, gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := d.svc.Debit(ctx, ports.DebitRequest{ArtisanID: uuid.New(), Amount: 1000})
	assertAppError(t, err, "SYS_001")
}

// ==================== Application fee ====================

func TestWalletService_CanApplyForJob(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	rich, poor, fresh := uuid.New(), uuid.New(), uuid.New()

	d.walletRepo.EXPECT().GetByArtisanID(ctx, rich).Return(&domain.WalletBalance{Balance: 1000}, nil)
	d.walletRepo.EXPECT().GetByArtisanID(ctx, poor).Return(&domain.WalletBalance{Balance: 999}, nil)
	d.walletRepo.EXPECT().GetByArtisanID(ctx, fresh).Return(nil, nil)

	got, err := d.svc.CanApplyForJob(ctx, rich)
	require.NoError(t, err)
	assert.True(t, got.CanApply)
	assert.Equal(t, int64(1000), got.Fee)

	got, err = d.svc.CanApplyForJob(ctx, poor)
	require.NoError(t, err)
	assert.False(t, got.CanApply)

	got, err = d.svc.CanApplyForJob(ctx, fresh)
	require.NoError(t, err)
	assert.False(t, got.CanApply)
	assert.Equal(t, int64(0), got.Balance)
}

func TestWalletService_ChargeApplicationFee(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID, jobID := uuid.New(), uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, d.tx, artisanID).Return(&domain.WalletBalance{
		Balance: 2500, TotalRecharged: 3000, TotalSpent: 500,
	}, nil)
	d.walletRepo.EXPECT().Update(ctx, d.tx, gomock.Any()).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.WalletTransaction) error {
			assert.Equal(t, int64(1000), e.Amount)
			assert.Equal(t, descApplicationFee, e.Description)
			return nil
		})

	balance, err := d.svc.ChargeApplicationFee(ctx, artisanID, jobID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), balance)
}

// ==================== Refund ====================

func TestWalletService_Refund(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, d.tx, artisanID).Return(&domain.WalletBalance{
		Balance: 4000, TotalRecharged: 5000, TotalSpent: 1000,
	}, nil)
	d.walletRepo.EXPECT().Update(ctx, d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, w *domain.WalletBalance) error {
			assert.Equal(t, int64(0), w.TotalSpent)
			assert.True(t, w.Consistent())
			return nil
		})
	d.ledgerRepo.EXPECT().Append(ctx, d.tx, gomock.Any()).Return(nil)

	balance, err := d.svc.Refund(ctx, ports.WalletRefundRequest{ArtisanID: artisanID, Amount: 1000, Reason: "job annulé"})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), balance)
}

func TestWalletService_Refund_ExceedsSpent(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(d.tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, d.tx, artisanID).Return(&domain.WalletBalance{
		Balance: 4500, TotalRecharged: 5000, TotalSpent: 500,
	}, nil)

	_, err := d.svc.Refund(ctx, ports.WalletRefundRequest{ArtisanID: artisanID, Amount: 1000})
	assertAppError(t, err, "WAL_003")
}

func TestWalletService_ListTransactions_ClampsPaging(t *testing.T) {
	d := setupWalletService(t, true)
	ctx := context.Background()
	artisanID := uuid.New()

	d.ledgerRepo.EXPECT().ListByArtisan(ctx, artisanID, 1, 20).Return([]domain.WalletTransaction{{ID: uuid.New()}}, int64(1), nil)

	entries, total, err := d.svc.ListTransactions(ctx, artisanID, 0, 500)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(1), total)
}
