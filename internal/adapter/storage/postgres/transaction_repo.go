package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, contract_id, payer_id, receiver_id, payment_method_id, amount,
	transaction_type, status, provider, provider_transaction_id, provider_reference,
	checkout_url, failure_reason, metadata, created_at, updated_at, processed_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var metadata []byte
	err := row.Scan(
		&t.ID, &t.ContractID, &t.PayerID, &t.ReceiverID, &t.PaymentMethodID, &t.Amount,
		&t.TransactionType, &t.Status, &t.Provider, &t.ProviderTransactionID, &t.ProviderReference,
		&t.CheckoutURL, &t.FailureReason, &metadata, &t.CreatedAt, &t.UpdatedAt, &t.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return t, nil
}

func (r *TransactionRepo) getOne(row pgx.Row, what string) (*domain.Transaction, error) {
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return t, nil
}

// Create inserts a new transaction within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	metadata, err := json.Marshal(t.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = tx.Exec(ctx, query,
		t.ID, t.ContractID, t.PayerID, t.ReceiverID, t.PaymentMethodID, t.Amount,
		t.TransactionType, t.Status, t.Provider, t.ProviderTransactionID, t.ProviderReference,
		t.CheckoutURL, t.FailureReason, metadata, t.CreatedAt, t.UpdatedAt, t.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.getOne(r.pool.QueryRow(ctx, query, id), "get transaction")
}

// GetByIDForUpdate locks a transaction row. This MUST be called within a transaction.
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`
	return r.getOne(tx.QueryRow(ctx, query, id), "get transaction for update")
}

// GetByProviderReference matches either provider identifier.
func (r *TransactionRepo) GetByProviderReference(ctx context.Context, provider domain.ProviderID, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE provider = $1 AND (provider_reference = $2 OR provider_transaction_id = $2)
		ORDER BY created_at DESC LIMIT 1`
	return r.getOne(r.pool.QueryRow(ctx, query, provider, reference), "get transaction by provider reference")
}

// Update writes the mutable columns within a transaction.
func (r *TransactionRepo) Update(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	metadata, err := json.Marshal(t.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `UPDATE transactions
		SET status = $1, provider_transaction_id = $2, provider_reference = $3, checkout_url = $4,
			failure_reason = $5, metadata = $6, updated_at = $7, processed_at = $8
		WHERE id = $9`

	tag, err := tx.Exec(ctx, query,
		t.Status, t.ProviderTransactionID, t.ProviderReference, t.CheckoutURL,
		t.FailureReason, metadata, t.UpdatedAt, t.ProcessedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", t.ID)
	}
	return nil
}

// ListByContract returns every payment of a contract, newest first.
func (r *TransactionRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE contract_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txns, nil
}
