package postgres

import (
	"context"
	"errors"
	"fmt"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const ledgerColumns = `id, artisan_id, type, amount, balance_after, description, reference, related_job_id, status, created_at`

// LedgerRepo implements ports.WalletLedgerRepository over wallet_transactions.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

func scanLedgerEntry(row rowScanner) (*domain.WalletTransaction, error) {
	e := &domain.WalletTransaction{}
	var reference *string
	err := row.Scan(
		&e.ID, &e.ArtisanID, &e.Type, &e.Amount, &e.BalanceAfter,
		&e.Description, &reference, &e.RelatedJobID, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Reference = derefString(reference)
	return e, nil
}

// Append inserts a ledger entry within a transaction. An empty reference is stored as NULL.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.WalletTransaction) error {
	query := `INSERT INTO wallet_transactions (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.ArtisanID, e.Type, e.Amount, e.BalanceAfter,
		e.Description, nullString(e.Reference), e.RelatedJobID, e.Status, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// GetByReference returns the first entry recorded under reference.
func (r *LedgerRepo) GetByReference(ctx context.Context, artisanID uuid.UUID, reference string) (*domain.WalletTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM wallet_transactions
		WHERE artisan_id = $1 AND reference = $2
		ORDER BY created_at ASC LIMIT 1`

	e, err := scanLedgerEntry(r.pool.QueryRow(ctx, query, artisanID, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet transaction by reference: %w", err)
	}
	return e, nil
}

// ListByArtisan pages through an artisan's ledger, newest first.
func (r *LedgerRepo) ListByArtisan(ctx context.Context, artisanID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_transactions WHERE artisan_id = $1`, artisanID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count wallet transactions: %w", err)
	}

	query := `SELECT ` + ledgerColumns + ` FROM wallet_transactions
		WHERE artisan_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, artisanID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.WalletTransaction, 0, pageSize)
	for rows.Next() {
		e, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan wallet transaction: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate wallet transactions: %w", err)
	}
	return entries, total, nil
}
