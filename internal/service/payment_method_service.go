package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var errNoCipher = errors.New("encryption key not configured")

// PaymentMethodServiceImpl implements ports.PaymentMethodService.
// Full phone numbers only exist encrypted at rest and decrypted in Resolve.
type PaymentMethodServiceImpl struct {
	repo       ports.PaymentMethodRepository
	encSvc     ports.EncryptionService
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewPaymentMethodService creates a new PaymentMethodServiceImpl.
// encSvc may be nil, in which case mobile-money methods cannot be saved.
func NewPaymentMethodService(
	repo ports.PaymentMethodRepository,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *PaymentMethodServiceImpl {
	return &PaymentMethodServiceImpl{repo: repo, encSvc: encSvc, transactor: transactor, log: log}
}

// Create validates and stores a payment method. The owner's first method
// becomes the default.
func (s *PaymentMethodServiceImpl) Create(ctx context.Context, req ports.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	now := time.Now().UTC()
	method := &domain.PaymentMethod{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Type:        req.Type,
		Provider:    req.Provider,
		DisplayName: strings.TrimSpace(req.DisplayName),
		IsDefault:   req.IsDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch req.Type {
	case domain.PaymentMethodMobileMoney:
		if !req.Provider.IsMobileMoney() {
			return nil, apperror.ErrProviderNotSupported()
		}
		phone := strings.TrimSpace(req.Phone)
		if phone == "" {
			return nil, apperror.Validation("Numéro de téléphone requis")
		}
		if s.encSvc == nil {
			return nil, apperror.ErrEncryptionFailure(errNoCipher)
		}
		sealed, err := s.encSvc.Encrypt(phone)
		if err != nil {
			s.log.Error().Err(err).Msg("phone encryption failed")
			return nil, apperror.ErrEncryptionFailure(err)
		}
		masked := domain.MaskPhone(phone)
		method.PhoneEncrypted = sealed
		method.PhoneMasked = &masked
	case domain.PaymentMethodBankCard:
		if !isCardLast4(req.CardLast4) {
			return nil, apperror.Validation("Les 4 derniers chiffres de la carte sont requis")
		}
		last4 := req.CardLast4
		method.Provider = domain.ProviderCard
		method.CardLast4 = &last4
	case domain.PaymentMethodCash:
		method.Provider = domain.ProviderCash
		method.IsVerified = true
	default:
		return nil, apperror.Validation("Type de moyen de paiement invalide")
	}
	if method.DisplayName == "" {
		method.DisplayName = method.Provider.DisplayName()
	}

	existing, err := s.repo.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payment methods: %w", err))
	}
	if len(existing) == 0 {
		method.IsDefault = true
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.repo.Create(ctx, dbTx, method); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment method: %w", err))
	}
	if method.IsDefault {
		if err := s.repo.SetDefault(ctx, dbTx, method.OwnerID, method.ID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("set default payment method: %w", err))
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("method_id", method.ID.String()).
		Str("owner_id", method.OwnerID.String()).
		Str("type", string(method.Type)).
		Str("provider", string(method.Provider)).
		Msg("payment method created")
	return method, nil
}

// List returns the owner's methods, default first.
func (s *PaymentMethodServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]domain.PaymentMethod, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payment methods: %w", err))
	}
	return list, nil
}

// SetDefault makes id the owner's only default method.
func (s *PaymentMethodServiceImpl) SetDefault(ctx context.Context, ownerID, id uuid.UUID) (*domain.PaymentMethod, error) {
	method, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.repo.SetDefault(ctx, dbTx, ownerID, id); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("set default payment method: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	method.IsDefault = true
	return method, nil
}

// Resolve loads a method owned by ownerID and decrypts its phone number.
func (s *PaymentMethodServiceImpl) Resolve(ctx context.Context, ownerID, id uuid.UUID) (*domain.PaymentMethod, string, error) {
	method, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	if method.PhoneEncrypted == "" {
		return method, "", nil
	}
	if s.encSvc == nil {
		return nil, "", apperror.ErrEncryptionFailure(errNoCipher)
	}
	phone, err := s.encSvc.Decrypt(method.PhoneEncrypted)
	if err != nil {
		s.log.Error().Err(err).Str("method_id", id.String()).Msg("phone decryption failed")
		return nil, "", apperror.ErrEncryptionFailure(err)
	}
	return method, phone, nil
}

// owned hides other owners' methods behind a not-found error.
func (s *PaymentMethodServiceImpl) owned(ctx context.Context, ownerID, id uuid.UUID) (*domain.PaymentMethod, error) {
	method, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment method: %w", err))
	}
	if method == nil || method.OwnerID != ownerID {
		return nil, apperror.ErrNotFound("payment method")
	}
	return method, nil
}

func isCardLast4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
