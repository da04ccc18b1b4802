package service

import (
	"context"
	"testing"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/core/ports/mocks"
	"builderhub-payments/internal/gateway"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentTestDeps struct {
	svc        *PaymentServiceImpl
	methods    *mocks.MockPaymentMethodService
	records    *mocks.MockRecordService
	dispatcher *mocks.MockGatewayDispatcher
	escrows    *mocks.MockEscrowRepository
}

func setupPaymentService(t *testing.T) *paymentTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentTestDeps{
		methods:    mocks.NewMockPaymentMethodService(ctrl),
		records:    mocks.NewMockRecordService(ctrl),
		dispatcher: mocks.NewMockGatewayDispatcher(ctrl),
		escrows:    mocks.NewMockEscrowRepository(ctrl),
	}
	d.svc = NewPaymentService(
		d.methods, d.records, d.dispatcher,
		NewSettingsService(nil, testDefaults, zerolog.Nop()),
		d.escrows,
		zerolog.Nop(),
	)
	return d
}

func mobileMethod(owner uuid.UUID, provider domain.ProviderID) *domain.PaymentMethod {
	masked := "•••• 3456"
	return &domain.PaymentMethod{
		ID:          uuid.New(),
		OwnerID:     owner,
		Type:        domain.PaymentMethodMobileMoney,
		Provider:    provider,
		PhoneMasked: &masked,
	}
}

func initiateRequest(methodID uuid.UUID, payer uuid.UUID) ports.InitiatePaymentRequest {
	return ports.InitiatePaymentRequest{
		ContractID:      uuid.New(),
		PayerID:         payer,
		ReceiverID:      uuid.New(),
		PaymentMethodID: methodID,
		Amount:          100000,
		Type:            domain.TransactionTypeAcompte,
		Description:     "Acompte chantier",
	}
}

// noEscrowYet lets an acompte through the escrow check.
func noEscrowYet(d *paymentTestDeps) {
	d.escrows.EXPECT().GetByContractID(gomock.Any(), gomock.Any()).Return(nil, nil)
}

// echoRecords makes the record mock behave like the real record keeper.
func echoRecords(d *paymentTestDeps) {
	d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateTransactionRequest) (*domain.Transaction, error) {
			return &domain.Transaction{
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
			}, nil
		})
}

func TestPaymentService_Initiate_OrangeMoneyRedirect(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	payer := uuid.New()
	method := mobileMethod(payer, domain.ProviderOrangeMoney)
	req := initiateRequest(method.ID, payer)

	var created ports.CreateTransactionRequest
	var dispatched ports.GatewayRequest
	var update domain.StatusUpdate

	d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22670123456", nil)
	d.dispatcher.EXPECT().Validate(domain.ProviderOrangeMoney, gomock.Any()).Return("")
	noEscrowYet(d)
	d.records.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r ports.CreateTransactionRequest) (*domain.Transaction, error) {
			created = r
			return &domain.Transaction{ID: uuid.New(), ContractID: r.ContractID, Amount: r.Amount, Status: domain.TransactionStatusEnAttente, Metadata: r.Metadata}, nil
		})
	d.dispatcher.EXPECT().Process(ctx, domain.ProviderOrangeMoney, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ProviderID, r ports.GatewayRequest) *ports.GatewayResponse {
			dispatched = r
			return &ports.GatewayResponse{
				Success:           true,
				TransactionID:     "pay-tok-1",
				ProviderReference: "notif-tok-1",
				CheckoutURL:       "https://webpay.orange.example/pay/1",
			}
		})
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.StatusUpdate) (*domain.Transaction, error) {
			update = u
			return &domain.Transaction{ID: u.TransactionID, Status: u.Status, CheckoutURL: u.CheckoutURL}, nil
		})

	result, err := d.svc.Initiate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, int64(100000), created.Amount)
	assert.Equal(t, int64(5000), created.Metadata.PlatformFee)
	assert.Equal(t, int64(105000), created.Metadata.TotalCharged)
	assert.Equal(t, 0.05, created.Metadata.FeeRate)
	assert.Equal(t, "•••• 3456", created.Metadata.Phone)
	assert.Equal(t, method.ID, *created.PaymentMethodID)

	assert.Equal(t, int64(105000), dispatched.Amount)
	assert.True(t, dispatched.FeeInclusive)
	assert.Equal(t, "+22670123456", dispatched.Phone)
	assert.Equal(t, "BH-"+update.TransactionID.String(), dispatched.Reference)

	assert.Equal(t, domain.TransactionStatusTraitement, update.Status)
	assert.Equal(t, "pay-tok-1", *update.ProviderTransactionID)
	assert.Equal(t, "notif-tok-1", *update.ProviderReference)
	assert.Equal(t, "https://webpay.orange.example/pay/1", result.CheckoutURL)
	assert.Equal(t, domain.TransactionStatusTraitement, result.Transaction.Status)
}

func TestPaymentService_Initiate_MoovPushMessage(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	payer := uuid.New()
	method := mobileMethod(payer, domain.ProviderMoovMoney)

	d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22660000000", nil)
	d.dispatcher.EXPECT().Validate(domain.ProviderMoovMoney, gomock.Any()).Return("")
	noEscrowYet(d)
	echoRecords(d)
	d.dispatcher.EXPECT().Process(ctx, domain.ProviderMoovMoney, gomock.Any()).Return(&ports.GatewayResponse{
		Success: true,
		Message: "Confirmez le paiement sur votre téléphone",
	})
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(&domain.Transaction{Status: domain.TransactionStatusTraitement}, nil)

	result, err := d.svc.Initiate(ctx, initiateRequest(method.ID, payer))
	require.NoError(t, err)
	assert.Empty(t, result.CheckoutURL)
	assert.Equal(t, "Confirmez le paiement sur votre téléphone", result.Message)
}

func TestPaymentService_Initiate_UnconfiguredProviderMarksFailed(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	payer := uuid.New()
	method := mobileMethod(payer, domain.ProviderWave)

	var failed domain.StatusUpdate
	d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22670000000", nil)
	d.dispatcher.EXPECT().Validate(domain.ProviderWave, gomock.Any()).Return("")
	noEscrowYet(d)
	echoRecords(d)
	d.dispatcher.EXPECT().Process(ctx, domain.ProviderWave, gomock.Any()).Return(&ports.GatewayResponse{
		Success: false,
		Error:   gateway.MsgNotConfigured,
	})
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.StatusUpdate) (*domain.Transaction, error) {
			failed = u
			return &domain.Transaction{Status: u.Status}, nil
		})

	result, err := d.svc.Initiate(ctx, initiateRequest(method.ID, payer))
	assert.Nil(t, result)
	assertAppError(t, err, "GW_002")

	assert.Equal(t, domain.TransactionStatusEchoue, failed.Status)
	require.NotNil(t, failed.FailureReason)
	assert.Equal(t, gateway.MsgNotConfigured, *failed.FailureReason)
}

func TestPaymentService_Initiate_ProviderRejection(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	payer := uuid.New()
	method := mobileMethod(payer, domain.ProviderTelecelMoney)

	d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22678000000", nil)
	d.dispatcher.EXPECT().Validate(domain.ProviderTelecelMoney, gomock.Any()).Return("")
	noEscrowYet(d)
	echoRecords(d)
	d.dispatcher.EXPECT().Process(ctx, domain.ProviderTelecelMoney, gomock.Any()).Return(&ports.GatewayResponse{
		Success: false,
		Error:   "Solde insuffisant",
	})
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(&domain.Transaction{}, nil)

	_, err := d.svc.Initiate(ctx, initiateRequest(method.ID, payer))
	assertAppError(t, err, "GW_003")
	assert.Contains(t, err.Error(), "Solde insuffisant")
}

func TestPaymentService_Initiate_ValidationRejectedBeforeRecord(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	payer := uuid.New()
	method := mobileMethod(payer, domain.ProviderOrangeMoney)

	d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22670000000", nil)
	d.dispatcher.EXPECT().Validate(domain.ProviderOrangeMoney, gomock.Any()).Return(gateway.MsgNotMultipleOfFive)

	_, err := d.svc.Initiate(ctx, initiateRequest(method.ID, payer))
	assertAppError(t, err, "PAY_002")
}

func TestPaymentService_Initiate_CashStopsAfterRecord(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	payer := uuid.New()
	method := &domain.PaymentMethod{ID: uuid.New(), OwnerID: payer, Type: domain.PaymentMethodCash, Provider: domain.ProviderCash}

	d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "", nil)
	noEscrowYet(d)
	echoRecords(d)

	result, err := d.svc.Initiate(ctx, initiateRequest(method.ID, payer))
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusEnAttente, result.Transaction.Status)
	assert.Equal(t, domain.ProviderCash, result.Transaction.Provider)
	assert.Equal(t, msgCashPending, result.Message)
}

func TestPaymentService_Initiate_AmountsOffGridAfterFee(t *testing.T) {
	cases := []struct {
		amount int64
		fee    int64
	}{
		{1050, 53},
		{2550, 128},
		{10010, 501},
	}
	for _, tc := range cases {
		d := setupPaymentService(t)
		ctx := context.Background()
		payer := uuid.New()
		method := mobileMethod(payer, domain.ProviderOrangeMoney)
		req := initiateRequest(method.ID, payer)
		req.Amount = tc.amount

		var validated, dispatched ports.GatewayRequest
		d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22670123456", nil)
		d.dispatcher.EXPECT().Validate(domain.ProviderOrangeMoney, gomock.Any()).DoAndReturn(
			func(_ domain.ProviderID, r ports.GatewayRequest) string {
				validated = r
				return ""
			})
		noEscrowYet(d)
		echoRecords(d)
		d.dispatcher.EXPECT().Process(ctx, domain.ProviderOrangeMoney, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ProviderID, r ports.GatewayRequest) *ports.GatewayResponse {
				dispatched = r
				return &ports.GatewayResponse{Success: true, CheckoutURL: "https://webpay.orange.example/pay/2"}
			})
		d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(&domain.Transaction{Status: domain.TransactionStatusTraitement}, nil)

		result, err := d.svc.Initiate(ctx, req)
		require.NoError(t, err, "amount %d", tc.amount)
		assert.Equal(t, tc.amount, validated.Amount)
		assert.False(t, validated.FeeInclusive)
		assert.Equal(t, tc.amount+tc.fee, dispatched.Amount)
		assert.True(t, dispatched.FeeInclusive)
		assert.Equal(t, "https://webpay.orange.example/pay/2", result.CheckoutURL)
	}
}

func TestPaymentService_Initiate_ClosedEscrowRefusedBeforeDispatch(t *testing.T) {
	for _, status := range []domain.EscrowStatus{domain.EscrowStatusTermine, domain.EscrowStatusCloture} {
		d := setupPaymentService(t)
		ctx := context.Background()
		payer := uuid.New()
		method := mobileMethod(payer, domain.ProviderWave)
		req := initiateRequest(method.ID, payer)

		d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22670123456", nil)
		d.dispatcher.EXPECT().Validate(domain.ProviderWave, gomock.Any()).Return("")
		d.escrows.EXPECT().GetByContractID(ctx, req.ContractID).
			Return(&domain.EscrowAccount{ContractID: req.ContractID, Status: status}, nil)

		// No record is created and no provider is called.
		result, err := d.svc.Initiate(ctx, req)
		assert.Nil(t, result)
		assertAppError(t, err, "ESC_003")
	}
}

func TestPaymentService_Initiate_SoldeSkipsEscrowCheck(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	payer := uuid.New()
	method := mobileMethod(payer, domain.ProviderMoovMoney)
	req := initiateRequest(method.ID, payer)
	req.Type = domain.TransactionTypeSolde

	d.methods.EXPECT().Resolve(ctx, payer, method.ID).Return(method, "+22660000000", nil)
	d.dispatcher.EXPECT().Validate(domain.ProviderMoovMoney, gomock.Any()).Return("")
	echoRecords(d)
	d.dispatcher.EXPECT().Process(ctx, domain.ProviderMoovMoney, gomock.Any()).Return(&ports.GatewayResponse{Success: true})
	d.records.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(&domain.Transaction{Status: domain.TransactionStatusTraitement}, nil)

	_, err := d.svc.Initiate(ctx, req)
	require.NoError(t, err)
}

func TestPaymentService_Initiate_InvalidInput(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()

	req := initiateRequest(uuid.New(), uuid.New())
	req.Amount = -5
	_, err := d.svc.Initiate(ctx, req)
	assertAppError(t, err, "PAY_002")

	req = initiateRequest(uuid.New(), uuid.New())
	req.Type = "avance"
	_, err = d.svc.Initiate(ctx, req)
	assertAppError(t, err, "PAY_002")
}

func TestPaymentService_Get_HidesOtherUsers(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	txn := &domain.Transaction{ID: uuid.New(), PayerID: uuid.New(), ReceiverID: uuid.New()}

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil).Times(2)

	got, err := d.svc.Get(ctx, txn.ReceiverID, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, got.ID)

	_, err = d.svc.Get(ctx, uuid.New(), txn.ID)
	assertAppError(t, err, "PAY_004")
}

func TestPaymentService_Cancel(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	txn := &domain.Transaction{ID: uuid.New(), PayerID: uuid.New(), ReceiverID: uuid.New(), Status: domain.TransactionStatusEnAttente}

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil)
	d.records.EXPECT().UpdateStatus(ctx, domain.StatusUpdate{TransactionID: txn.ID, Status: domain.TransactionStatusAnnule}).
		Return(&domain.Transaction{ID: txn.ID, Status: domain.TransactionStatusAnnule}, nil)

	got, err := d.svc.Cancel(ctx, txn.PayerID, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusAnnule, got.Status)
}

func TestPaymentService_ConfirmCash(t *testing.T) {
	d := setupPaymentService(t)
	ctx := context.Background()
	txn := &domain.Transaction{
		ID:         uuid.New(),
		PayerID:    uuid.New(),
		ReceiverID: uuid.New(),
		Provider:   domain.ProviderCash,
		Status:     domain.TransactionStatusEnAttente,
	}

	d.records.EXPECT().Get(ctx, txn.ID).Return(txn, nil).Times(2)
	d.records.EXPECT().UpdateStatus(ctx, domain.StatusUpdate{TransactionID: txn.ID, Status: domain.TransactionStatusComplete}).
		Return(&domain.Transaction{ID: txn.ID, Status: domain.TransactionStatusComplete}, nil)

	// The payer cannot confirm receipt.
	_, err := d.svc.ConfirmCash(ctx, txn.PayerID, txn.ID)
	assertAppError(t, err, "TXN_002")

	got, err := d.svc.ConfirmCash(ctx, txn.ReceiverID, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusComplete, got.Status)
}
