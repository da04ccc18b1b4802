package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	callbackNonceScope = "callback"
	callbackNonceTTL   = 24 * time.Hour
)

// callbackPayload accepts the field names used by the four providers.
type callbackPayload struct {
	EventID           string          `json:"event_id"`
	ID                string          `json:"id"`
	Reference         string          `json:"reference"`
	ClientReference   string          `json:"client_reference"`
	OrderID           string          `json:"order_id"`
	ProviderReference string          `json:"provider_reference"`
	NotifToken        string          `json:"notif_token"`
	TransactionID     string          `json:"transaction_id"`
	Status            json.RawMessage `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	Message           string          `json:"message"`
}

func (p *callbackPayload) status() string {
	if p.PaymentStatus != "" {
		return strings.ToUpper(p.PaymentStatus)
	}
	raw := strings.TrimSpace(string(p.Status))
	return strings.ToUpper(strings.Trim(raw, `"`))
}

func (p *callbackPayload) eventID() string {
	if id := firstNonBlank(p.EventID, p.ID); id != "" {
		return id
	}
	if p.TransactionID != "" {
		return p.TransactionID + ":" + p.status()
	}
	return ""
}

type callbackOutcome int

const (
	outcomePending callbackOutcome = iota
	outcomeSuccess
	outcomeFailure
)

func classifyStatus(s string) (callbackOutcome, bool) {
	switch s {
	case "SUCCESS", "SUCCESSFUL", "SUCCEEDED", "COMPLETE", "COMPLETED", "0":
		return outcomeSuccess, true
	case "FAILED", "FAILURE", "CANCELLED", "CANCELED", "EXPIRED", "REJECTED", "ERROR", "2":
		return outcomeFailure, true
	case "PENDING", "INITIATED", "PROCESSING", "OPEN", "1":
		return outcomePending, true
	}
	return outcomePending, false
}

// CallbackServiceImpl implements ports.CallbackService.
type CallbackServiceImpl struct {
	records ports.RecordService
	txRepo  ports.TransactionRepository
	nonces  ports.NonceStore
	sigSvc  ports.SignatureService
	secrets map[domain.ProviderID]string
	log     zerolog.Logger
}

// NewCallbackService creates a new CallbackServiceImpl. secrets holds each
// provider's callback signing secret.
func NewCallbackService(
	records ports.RecordService,
	txRepo ports.TransactionRepository,
	nonces ports.NonceStore,
	sigSvc ports.SignatureService,
	secrets map[domain.ProviderID]string,
	log zerolog.Logger,
) *CallbackServiceImpl {
	return &CallbackServiceImpl{
		records: records,
		txRepo:  txRepo,
		nonces:  nonces,
		sigSvc:  sigSvc,
		secrets: secrets,
		log:     log,
	}
}

// Handle verifies and applies one provider confirmation. Pending notices and
// repeats of an already-applied outcome return the transaction unchanged.
func (s *CallbackServiceImpl) Handle(ctx context.Context, provider domain.ProviderID, signature string, body []byte) (*domain.Transaction, error) {
	if !provider.IsMobileMoney() {
		return nil, apperror.ErrProviderNotSupported()
	}
	secret := s.secrets[provider]
	if secret == "" {
		s.log.Error().Str("provider", string(provider)).Msg("callback secret missing")
		return nil, apperror.ErrProviderNotConfigured()
	}
	if !s.sigSvc.Verify(secret, string(body), signature) {
		s.log.Warn().Str("provider", string(provider)).Msg("callback signature mismatch")
		return nil, apperror.ErrInvalidSignature()
	}

	var payload callbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperror.Validation("Corps de notification invalide")
	}
	outcome, known := classifyStatus(payload.status())
	if !known {
		return nil, apperror.Validation(fmt.Sprintf("Statut inconnu: %s", payload.status()))
	}
	eventID := payload.eventID()
	if eventID == "" {
		return nil, apperror.Validation("Identifiant d'événement manquant")
	}

	txn, err := s.locate(ctx, provider, &payload)
	if err != nil {
		return nil, err
	}

	nonce := domain.BuildCallbackNonce(provider, eventID)
	fresh, err := s.nonces.CheckAndSet(ctx, callbackNonceScope, nonce, callbackNonceTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("callback nonce: %w", err))
	}
	if !fresh {
		return nil, apperror.ErrNonceUsed()
	}

	target := domain.TransactionStatusComplete
	switch outcome {
	case outcomePending:
		return txn, nil
	case outcomeFailure:
		target = domain.TransactionStatusEchoue
	}
	if txn.Status == target {
		return txn, nil
	}

	upd := domain.StatusUpdate{TransactionID: txn.ID, Status: target}
	if ref := firstNonBlank(payload.ProviderReference, payload.NotifToken); ref != "" && txn.ProviderReference == nil {
		upd.ProviderReference = &ref
	}
	if payload.TransactionID != "" && txn.ProviderTransactionID == nil {
		upd.ProviderTransactionID = &payload.TransactionID
	}
	if target == domain.TransactionStatusEchoue {
		reason := firstNonBlank(payload.Message, "Paiement refusé par le fournisseur")
		upd.FailureReason = &reason
	}

	updated, err := s.records.UpdateStatus(ctx, upd)
	if err != nil {
		// The event was not applied; let the provider's retry through.
		if relErr := s.nonces.Release(ctx, callbackNonceScope, nonce); relErr != nil {
			s.log.Error().Err(relErr).Str("event_id", eventID).Msg("callback nonce release failed")
		}
		return nil, err
	}

	s.log.Info().
		Str("provider", string(provider)).
		Str("event_id", eventID).
		Str("tx_id", updated.ID.String()).
		Str("status", string(updated.Status)).
		Msg("provider callback applied")
	return updated, nil
}

// locate finds the transaction by our BH- reference first, then by the
// provider's own identifiers.
func (s *CallbackServiceImpl) locate(ctx context.Context, provider domain.ProviderID, p *callbackPayload) (*domain.Transaction, error) {
	ref := firstNonBlank(p.Reference, p.ClientReference, p.OrderID)
	if id, ok := strings.CutPrefix(ref, "BH-"); ok {
		if txID, err := uuid.Parse(id); err == nil {
			txn, err := s.records.Get(ctx, txID)
			if err != nil {
				return nil, err
			}
			if txn.Provider != provider {
				return nil, apperror.ErrNotFound("transaction")
			}
			return txn, nil
		}
	}

	for _, candidate := range []string{p.ProviderReference, p.NotifToken, p.TransactionID} {
		if candidate == "" {
			continue
		}
		txn, err := s.txRepo.GetByProviderReference(ctx, provider, candidate)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lookup by provider reference: %w", err))
		}
		if txn != nil {
			return txn, nil
		}
	}
	return nil, apperror.ErrNotFound("transaction")
}
