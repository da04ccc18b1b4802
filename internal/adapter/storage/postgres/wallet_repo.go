package postgres

import (
	"context"
	"errors"
	"fmt"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `artisan_id, balance, total_recharged, total_spent, created_at, updated_at`

// WalletRepo implements ports.WalletRepository over wallet_balances.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func scanWallet(row rowScanner) (*domain.WalletBalance, error) {
	w := &domain.WalletBalance{}
	err := row.Scan(&w.ArtisanID, &w.Balance, &w.TotalRecharged, &w.TotalSpent, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

// GetByArtisanID reads a balance without locking.
func (r *WalletRepo) GetByArtisanID(ctx context.Context, artisanID uuid.UUID) (*domain.WalletBalance, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_balances WHERE artisan_id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, artisanID))
	if err != nil {
		return nil, fmt.Errorf("get wallet by artisan: %w", err)
	}
	return w, nil
}

// GetForUpdate locks the artisan's balance row. This MUST be called within a transaction.
func (r *WalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, artisanID uuid.UUID) (*domain.WalletBalance, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_balances WHERE artisan_id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, artisanID))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// GetOrCreateForUpdate inserts a zero balance on first use, then locks the row.
func (r *WalletRepo) GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, artisanID uuid.UUID) (*domain.WalletBalance, error) {
	insert := `INSERT INTO wallet_balances (artisan_id, balance, total_recharged, total_spent, created_at, updated_at)
		VALUES ($1, 0, 0, 0, NOW(), NOW())
		ON CONFLICT (artisan_id) DO NOTHING`

	if _, err := tx.Exec(ctx, insert, artisanID); err != nil {
		return nil, fmt.Errorf("init wallet: %w", err)
	}
	w, err := r.GetForUpdate(ctx, tx, artisanID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("wallet for artisan %s missing after insert", artisanID)
	}
	return w, nil
}

// Update writes the balance counters within a transaction.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.WalletBalance) error {
	query := `UPDATE wallet_balances
		SET balance = $1, total_recharged = $2, total_spent = $3, updated_at = $4
		WHERE artisan_id = $5`

	tag, err := tx.Exec(ctx, query, w.Balance, w.TotalRecharged, w.TotalSpent, w.UpdatedAt, w.ArtisanID)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ArtisanID)
	}
	return nil
}
