package ports

import (
	"context"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for artisan balances.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	GetByArtisanID(ctx context.Context, artisanID uuid.UUID) (*domain.WalletBalance, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, artisanID uuid.UUID) (*domain.WalletBalance, error)
	// GetOrCreateForUpdate inserts a zero balance row when missing, then locks it.
	GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, artisanID uuid.UUID) (*domain.WalletBalance, error)
	Update(ctx context.Context, tx pgx.Tx, wallet *domain.WalletBalance) error
}

// WalletLedgerRepository is the append-only wallet transaction log.
type WalletLedgerRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.WalletTransaction) error
	GetByReference(ctx context.Context, artisanID uuid.UUID, reference string) (*domain.WalletTransaction, error)
	ListByArtisan(ctx context.Context, artisanID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error)
}

// PaymentMethodRepository persists saved payment instruments.
type PaymentMethodRepository interface {
	Create(ctx context.Context, tx pgx.Tx, method *domain.PaymentMethod) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMethod, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PaymentMethod, error)
	// SetDefault clears the owner's current default and flags id, inside tx.
	SetDefault(ctx context.Context, tx pgx.Tx, ownerID, id uuid.UUID) error
}

// TransactionRepository persists contract payments.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Transaction, error)
	GetByProviderReference(ctx context.Context, provider domain.ProviderID, reference string) (*domain.Transaction, error)
	// Update writes status, provider identifiers, failure reason, metadata and processed_at.
	Update(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Transaction, error)
}

// EscrowRepository persists one escrow account per contract.
type EscrowRepository interface {
	// Create returns false when the contract already has an account.
	Create(ctx context.Context, tx pgx.Tx, account *domain.EscrowAccount) (bool, error)
	GetByContractID(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error)
	GetByContractIDForUpdate(ctx context.Context, tx pgx.Tx, contractID uuid.UUID) (*domain.EscrowAccount, error)
	Update(ctx context.Context, tx pgx.Tx, account *domain.EscrowAccount) error
}

// SettingsRepository reads platform_settings overrides.
type SettingsRepository interface {
	List(ctx context.Context) ([]domain.PlatformSetting, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
