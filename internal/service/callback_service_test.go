package service

import (
	"context"
	"fmt"
	"testing"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCallbackSecret = "wave-callback-secret"

type callbackTestDeps struct {
	svc     *CallbackServiceImpl
	records *mocks.MockRecordService
	txRepo  *mocks.MockTransactionRepository
	nonces  *mocks.MockNonceStore
	signer  *HMACSignatureService
}

func setupCallbackService(t *testing.T) *callbackTestDeps {
	ctrl := gomock.NewController(t)
	d := &callbackTestDeps{
		records: mocks.NewMockRecordService(ctrl),
		txRepo:  mocks.NewMockTransactionRepository(ctrl),
		nonces:  mocks.NewMockNonceStore(ctrl),
		signer:  NewHMACSignatureService(),
	}
	d.svc = NewCallbackService(d.records, d.txRepo, d.nonces, d.signer,
		map[domain.ProviderID]string{domain.ProviderWave: testCallbackSecret},
		zerolog.Nop())
	return d
}

func processingWaveTx() *domain.Transaction {
	return &domain.Transaction{
		ID:       uuid.New(),
		Provider: domain.ProviderWave,
		Status:   domain.TransactionStatusTraitement,
	}
}

func TestCallbackService_Handle_Success(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	body := []byte(fmt.Sprintf(`{"id":"evt-1","client_reference":"BH-%s","payment_status":"succeeded","transaction_id":"T-99"}`, txn.ID))

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "callback", "callback:wave:evt-1", callbackNonceTTL).Return(true, nil)
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.StatusUpdate) (*domain.Transaction, error) {
			assert.Equal(t, domain.TransactionStatusComplete, u.Status)
			require.NotNil(t, u.ProviderTransactionID)
			assert.Equal(t, "T-99", *u.ProviderTransactionID)
			assert.Nil(t, u.FailureReason)
			return &domain.Transaction{ID: u.TransactionID, Status: u.Status}, nil
		})

	got, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, string(body)), body)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusComplete, got.Status)
}

func TestCallbackService_Handle_FailureByProviderReference(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	body := []byte(`{"event_id":"evt-2","provider_reference":"cos-123","status":"FAILED","message":"Solde insuffisant"}`)

	d.txRepo.EXPECT().GetByProviderReference(ctx, domain.ProviderWave, "cos-123").Return(txn, nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "callback", "callback:wave:evt-2", callbackNonceTTL).Return(true, nil)
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.StatusUpdate) (*domain.Transaction, error) {
			assert.Equal(t, domain.TransactionStatusEchoue, u.Status)
			require.NotNil(t, u.FailureReason)
			assert.Equal(t, "Solde insuffisant", *u.FailureReason)
			return &domain.Transaction{ID: u.TransactionID, Status: u.Status}, nil
		})

	got, err := d.svc.Handle(ctx, domain.ProviderWave, "sha256="+d.signer.Sign(testCallbackSecret, string(body)), body)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusEchoue, got.Status)
}

func TestCallbackService_Handle_PendingIsNoop(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	body := []byte(fmt.Sprintf(`{"event_id":"evt-3","reference":"BH-%s","status":"PENDING"}`, txn.ID))

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "callback", gomock.Any(), callbackNonceTTL).Return(true, nil)

	got, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, string(body)), body)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusTraitement, got.Status)
}

func TestCallbackService_Handle_NumericStatus(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	body := []byte(fmt.Sprintf(`{"event_id":"evt-4","reference":"BH-%s","status":0}`, txn.ID))

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "callback", gomock.Any(), callbackNonceTTL).Return(true, nil)
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(&domain.Transaction{Status: domain.TransactionStatusComplete}, nil)

	got, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, string(body)), body)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusComplete, got.Status)
}

func TestCallbackService_Handle_Replay(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	body := []byte(fmt.Sprintf(`{"event_id":"evt-5","reference":"BH-%s","status":"SUCCESS"}`, txn.ID))

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "callback", "callback:wave:evt-5", callbackNonceTTL).Return(false, nil)

	_, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, string(body)), body)
	assertAppError(t, err, "SEC_004")
}

func TestCallbackService_Handle_BadSignature(t *testing.T) {
	d := setupCallbackService(t)
	body := []byte(`{"event_id":"evt-6","status":"SUCCESS"}`)

	_, err := d.svc.Handle(context.Background(), domain.ProviderWave, d.signer.Sign("wrong", string(body)), body)
	assertAppError(t, err, "SEC_002")
}

func TestCallbackService_Handle_ProviderChecks(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()

	_, err := d.svc.Handle(ctx, "paypal", "sig", []byte(`{}`))
	assertAppError(t, err, "GW_001")

	_, err = d.svc.Handle(ctx, domain.ProviderOrangeMoney, "sig", []byte(`{}`))
	assertAppError(t, err, "GW_002")
}

func TestCallbackService_Handle_MalformedPayloads(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()

	for name, body := range map[string]string{
		"not json":       `status=SUCCESS`,
		"unknown status": `{"event_id":"e","status":"MAYBE"}`,
		"no event id":    `{"status":"SUCCESS"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, body), []byte(body))
			assertAppError(t, err, "PAY_002")
		})
	}
}

func TestCallbackService_Handle_UnknownTransaction(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	body := []byte(`{"event_id":"evt-7","provider_reference":"nope","status":"SUCCESS"}`)

	d.txRepo.EXPECT().GetByProviderReference(ctx, domain.ProviderWave, "nope").Return(nil, nil)

	_, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, string(body)), body)
	assertAppError(t, err, "PAY_004")
}

func TestCallbackService_Handle_WrongProviderForReference(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	txn.Provider = domain.ProviderOrangeMoney
	body := []byte(fmt.Sprintf(`{"event_id":"evt-8","reference":"BH-%s","status":"SUCCESS"}`, txn.ID))

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil)

	_, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, string(body)), body)
	assertAppError(t, err, "PAY_004")
}

func TestCallbackService_Handle_AlreadyApplied(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	txn.Status = domain.TransactionStatusComplete
	body := []byte(fmt.Sprintf(`{"event_id":"evt-9","reference":"BH-%s","status":"SUCCESS"}`, txn.ID))

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil)
	d.nonces.EXPECT().CheckAndSet(ctx, "callback", gomock.Any(), callbackNonceTTL).Return(true, nil)

	got, err := d.svc.Handle(ctx, domain.ProviderWave, d.signer.Sign(testCallbackSecret, string(body)), body)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusComplete, got.Status)
}

func TestCallbackService_Handle_UnappliedEventReleasesNonce(t *testing.T) {
	d := setupCallbackService(t)
	ctx := context.Background()
	txn := processingWaveTx()
	body := []byte(fmt.Sprintf(`{"id":"evt-11","client_reference":"BH-%s","payment_status":"failed"}`, txn.ID))
	sig := d.signer.Sign(testCallbackSecret, string(body))

	gomock.InOrder(
		d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil),
		d.nonces.EXPECT().CheckAndSet(ctx, "callback", "callback:wave:evt-11", callbackNonceTTL).Return(true, nil),
		d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil, fmt.Errorf("db down")),
		d.nonces.EXPECT().Release(ctx, "callback", "callback:wave:evt-11").Return(nil),

		// The redelivery is accepted and applied.
		d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil),
		d.nonces.EXPECT().CheckAndSet(ctx, "callback", "callback:wave:evt-11", callbackNonceTTL).Return(true, nil),
		d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).
			Return(&domain.Transaction{ID: txn.ID, Status: domain.TransactionStatusEchoue}, nil),
	)

	_, err := d.svc.Handle(ctx, domain.ProviderWave, sig, body)
	require.Error(t, err)

	got, err := d.svc.Handle(ctx, domain.ProviderWave, sig, body)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusEchoue, got.Status)
}
