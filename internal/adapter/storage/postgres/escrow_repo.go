package postgres

import (
	"context"
	"errors"
	"fmt"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const escrowColumns = `id, contract_id, total_amount, amount_deposited, amount_confirmed, amount_released,
	amount_held, status, created_at, updated_at`

// EscrowRepo implements ports.EscrowRepository.
type EscrowRepo struct {
	pool Pool
}

// NewEscrowRepo creates a new EscrowRepo.
func NewEscrowRepo(pool Pool) *EscrowRepo {
	return &EscrowRepo{pool: pool}
}

func scanEscrow(row rowScanner) (*domain.EscrowAccount, error) {
	a := &domain.EscrowAccount{}
	err := row.Scan(
		&a.ID, &a.ContractID, &a.TotalAmount, &a.AmountDeposited, &a.AmountConfirmed, &a.AmountReleased,
		&a.AmountHeld, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Create inserts the account unless the contract already has one.
func (r *EscrowRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.EscrowAccount) (bool, error) {
	query := `INSERT INTO escrow_accounts (` + escrowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (contract_id) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		a.ID, a.ContractID, a.TotalAmount, a.AmountDeposited, a.AmountConfirmed, a.AmountReleased,
		a.AmountHeld, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert escrow account: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByContractID reads an account without locking.
func (r *EscrowRepo) GetByContractID(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	query := `SELECT ` + escrowColumns + ` FROM escrow_accounts WHERE contract_id = $1`

	a, err := scanEscrow(r.pool.QueryRow(ctx, query, contractID))
	if err != nil {
		return nil, fmt.Errorf("get escrow account: %w", err)
	}
	return a, nil
}

// GetByContractIDForUpdate locks the contract's account. This MUST be called within a transaction.
func (r *EscrowRepo) GetByContractIDForUpdate(ctx context.Context, tx pgx.Tx, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	query := `SELECT ` + escrowColumns + ` FROM escrow_accounts WHERE contract_id = $1 FOR UPDATE`

	a, err := scanEscrow(tx.QueryRow(ctx, query, contractID))
	if err != nil {
		return nil, fmt.Errorf("get escrow account for update: %w", err)
	}
	return a, nil
}

// Update writes amounts and status within a transaction.
func (r *EscrowRepo) Update(ctx context.Context, tx pgx.Tx, a *domain.EscrowAccount) error {
	query := `UPDATE escrow_accounts
		SET total_amount = $1, amount_deposited = $2, amount_confirmed = $3, amount_released = $4,
			amount_held = $5, status = $6, updated_at = $7
		WHERE id = $8`

	tag, err := tx.Exec(ctx, query,
		a.TotalAmount, a.AmountDeposited, a.AmountConfirmed, a.AmountReleased,
		a.AmountHeld, a.Status, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update escrow account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("escrow account not found: %s", a.ID)
	}
	return nil
}
