package service

import (
	"context"
	"fmt"
	"strings"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/internal/gateway"
	"builderhub-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const msgCashPending = "Paiement en espèces en attente de confirmation"

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	methods    ports.PaymentMethodService
	records    ports.RecordService
	dispatcher ports.GatewayDispatcher
	settings   ports.SettingsService
	escrows    ports.EscrowRepository
	log        zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	methods ports.PaymentMethodService,
	records ports.RecordService,
	dispatcher ports.GatewayDispatcher,
	settings ports.SettingsService,
	escrows ports.EscrowRepository,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		methods:    methods,
		records:    records,
		dispatcher: dispatcher,
		settings:   settings,
		escrows:    escrows,
		log:        log,
	}
}

// Initiate records a contract payment and, for non-cash methods, sends the
// fee-inclusive amount to the provider. The record exists before any
// provider call; a rejected call leaves it in echoue.
func (s *PaymentServiceImpl) Initiate(ctx context.Context, req ports.InitiatePaymentRequest) (*ports.PaymentResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.Type.Valid() {
		return nil, apperror.Validation("Type de transaction invalide")
	}

	method, phone, err := s.methods.Resolve(ctx, req.PayerID, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	fees, err := s.settings.Current(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load fee settings: %w", err))
	}
	breakdown := ComputeFee(req.Amount, fees.PlatformFeeRate)

	// Provider rules apply to what the user asked to pay; the fee is added after.
	provider := method.Provider
	if provider != domain.ProviderCash {
		if msg := s.dispatcher.Validate(provider, ports.GatewayRequest{Amount: req.Amount, Phone: phone}); msg != "" && msg != gateway.MsgUnsupportedProvider {
			return nil, apperror.Validation(msg)
		}
	}
	if req.Type.FundsEscrow() {
		if err := s.checkEscrowOpen(ctx, req.ContractID); err != nil {
			return nil, err
		}
	}
	gwReq := ports.GatewayRequest{
		Amount:        breakdown.TotalCharged,
		Phone:         phone,
		Description:   req.Description,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		FeeInclusive:  true,
	}

	meta := domain.TransactionMetadata{
		PlatformFee:  breakdown.PlatformFee,
		TotalCharged: breakdown.TotalCharged,
		FeeRate:      breakdown.FeeRate,
		Description:  req.Description,
	}
	if method.PhoneMasked != nil {
		meta.Phone = *method.PhoneMasked
	}
	methodID := method.ID
	txn, err := s.records.Create(ctx, ports.CreateTransactionRequest{
		ContractID:      req.ContractID,
		PayerID:         req.PayerID,
		ReceiverID:      req.ReceiverID,
		PaymentMethodID: &methodID,
		Amount:          req.Amount,
		Type:            req.Type,
		Provider:        provider,
		Metadata:        meta,
	})
	if err != nil {
		return nil, err
	}

	if provider == domain.ProviderCash {
		return &ports.PaymentResult{Transaction: txn, Message: msgCashPending}, nil
	}

	gwReq.Reference = txn.Reference()
	resp := s.dispatcher.Process(ctx, provider, gwReq)
	if !resp.Success {
		reason := firstNonBlank(resp.Error, resp.Message, gateway.MsgPaymentRejected)
		if _, uerr := s.records.UpdateStatus(ctx, domain.StatusUpdate{
			TransactionID: txn.ID,
			Status:        domain.TransactionStatusEchoue,
			FailureReason: &reason,
		}); uerr != nil {
			s.log.Error().Err(uerr).Str("tx_id", txn.ID.String()).Msg("failed to mark transaction as failed")
		}
		s.log.Warn().
			Str("tx_id", txn.ID.String()).
			Str("provider", string(provider)).
			Str("reason", reason).
			Msg("payment rejected by gateway")
		return nil, gatewayError(reason)
	}

	upd := domain.StatusUpdate{TransactionID: txn.ID, Status: domain.TransactionStatusTraitement}
	if resp.TransactionID != "" {
		upd.ProviderTransactionID = &resp.TransactionID
	}
	if resp.ProviderReference != "" {
		upd.ProviderReference = &resp.ProviderReference
	}
	if resp.CheckoutURL != "" {
		upd.CheckoutURL = &resp.CheckoutURL
	}
	txn, err = s.records.UpdateStatus(ctx, upd)
	if err != nil {
		// The provider holds a live intent; keep its ids in the log for reconciliation.
		s.log.Error().Err(err).
			Str("tx_id", upd.TransactionID.String()).
			Str("provider", string(provider)).
			Str("provider_tx_id", resp.TransactionID).
			Str("provider_ref", resp.ProviderReference).
			Msg("failed to record accepted payment")
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("contract_id", txn.ContractID.String()).
		Str("provider", string(provider)).
		Int64("amount", req.Amount).
		Int64("total_charged", breakdown.TotalCharged).
		Msg("payment initiated")

	return &ports.PaymentResult{Transaction: txn, CheckoutURL: resp.CheckoutURL, Message: resp.Message}, nil
}

// checkEscrowOpen refuses an escrow-funding payment for a contract whose
// escrow no longer accepts deposits. A contract without an account passes.
func (s *PaymentServiceImpl) checkEscrowOpen(ctx context.Context, contractID uuid.UUID) error {
	account, err := s.escrows.GetByContractID(ctx, contractID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load escrow for contract %s: %w", contractID, err))
	}
	if account != nil && account.IsClosed() {
		return apperror.ErrEscrowState(string(account.Status))
	}
	return nil
}

// Get returns a transaction visible to its payer or receiver.
func (s *PaymentServiceImpl) Get(ctx context.Context, actorID, txID uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.records.Get(ctx, txID)
	if err != nil {
		return nil, err
	}
	if actorID != txn.PayerID && actorID != txn.ReceiverID {
		return nil, apperror.ErrNotFound("transaction")
	}
	return txn, nil
}

// Cancel moves a non-terminal transaction to annule. Either party may cancel.
func (s *PaymentServiceImpl) Cancel(ctx context.Context, actorID, txID uuid.UUID) (*domain.Transaction, error) {
	if _, err := s.Get(ctx, actorID, txID); err != nil {
		return nil, err
	}
	txn, err := s.records.UpdateStatus(ctx, domain.StatusUpdate{TransactionID: txID, Status: domain.TransactionStatusAnnule})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("tx_id", txID.String()).Str("actor_id", actorID.String()).Msg("payment cancelled")
	return txn, nil
}

// ConfirmCash completes a pending cash payment. Only the receiver confirms.
func (s *PaymentServiceImpl) ConfirmCash(ctx context.Context, actorID, txID uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.Get(ctx, actorID, txID)
	if err != nil {
		return nil, err
	}
	if actorID != txn.ReceiverID || txn.Provider != domain.ProviderCash {
		return nil, apperror.ErrForbidden()
	}
	txn, err = s.records.UpdateStatus(ctx, domain.StatusUpdate{TransactionID: txID, Status: domain.TransactionStatusComplete})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("tx_id", txID.String()).Msg("cash payment confirmed")
	return txn, nil
}

func gatewayError(reason string) error {
	switch reason {
	case gateway.MsgUnsupportedProvider:
		return apperror.ErrProviderNotSupported()
	case gateway.MsgNotConfigured:
		return apperror.ErrProviderNotConfigured()
	}
	return apperror.ErrGateway(reason)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
