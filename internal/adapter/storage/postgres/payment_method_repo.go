package postgres

import (
	"context"
	"errors"
	"fmt"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentMethodColumns = `id, owner_id, type, provider, display_name, card_last4, phone_masked,
	phone_encrypted, is_default, is_verified, created_at, updated_at`

// PaymentMethodRepo implements ports.PaymentMethodRepository.
type PaymentMethodRepo struct {
	pool Pool
}

// NewPaymentMethodRepo creates a new PaymentMethodRepo.
func NewPaymentMethodRepo(pool Pool) *PaymentMethodRepo {
	return &PaymentMethodRepo{pool: pool}
}

func scanPaymentMethod(row rowScanner) (*domain.PaymentMethod, error) {
	m := &domain.PaymentMethod{}
	var encrypted *string
	err := row.Scan(
		&m.ID, &m.OwnerID, &m.Type, &m.Provider, &m.DisplayName, &m.CardLast4, &m.PhoneMasked,
		&encrypted, &m.IsDefault, &m.IsVerified, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.PhoneEncrypted = derefString(encrypted)
	return m, nil
}

// Create inserts a payment method within a transaction.
func (r *PaymentMethodRepo) Create(ctx context.Context, tx pgx.Tx, m *domain.PaymentMethod) error {
	query := `INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		m.ID, m.OwnerID, m.Type, m.Provider, m.DisplayName, m.CardLast4, m.PhoneMasked,
		nullString(m.PhoneEncrypted), m.IsDefault, m.IsVerified, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID fetches a payment method by UUID.
func (r *PaymentMethodRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE id = $1`

	m, err := scanPaymentMethod(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return m, nil
}

// ListByOwner returns the owner's methods, default first then newest.
func (r *PaymentMethodRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods
		WHERE owner_id = $1
		ORDER BY is_default DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment methods: %w", err)
	}
	return methods, nil
}

// SetDefault flags id and clears every other default of the owner in one statement.
func (r *PaymentMethodRepo) SetDefault(ctx context.Context, tx pgx.Tx, ownerID, id uuid.UUID) error {
	query := `UPDATE payment_methods
		SET is_default = (id = $2), updated_at = NOW()
		WHERE owner_id = $1 AND (is_default OR id = $2)`

	tag, err := tx.Exec(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("set default payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment method not found: %s", id)
	}
	return nil
}
