package memory

import (
	"context"
	"fmt"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func escrowKey(contractID uuid.UUID) string { return "escrow:" + contractID.String() }

// EscrowRepo implements ports.EscrowRepository, keyed by contract.
type EscrowRepo struct {
	store *Store
}

func NewEscrowRepo(store *Store) *EscrowRepo {
	return &EscrowRepo{store: store}
}

func (r *EscrowRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.EscrowAccount) (bool, error) {
	t, err := asTx(tx)
	if err != nil {
		return false, err
	}
	if err := t.lock(ctx, escrowKey(a.ContractID)); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.escrows[a.ContractID]; ok {
		return false, nil
	}
	contractID := a.ContractID
	r.store.escrows[contractID] = *a
	t.onRollback(func() { delete(r.store.escrows, contractID) })
	return true, nil
}

func (r *EscrowRepo) GetByContractID(ctx context.Context, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	a, ok := r.store.escrows[contractID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *EscrowRepo) GetByContractIDForUpdate(ctx context.Context, tx pgx.Tx, contractID uuid.UUID) (*domain.EscrowAccount, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := t.lock(ctx, escrowKey(contractID)); err != nil {
		return nil, err
	}
	return r.GetByContractID(ctx, contractID)
}

func (r *EscrowRepo) Update(ctx context.Context, tx pgx.Tx, a *domain.EscrowAccount) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := t.lock(ctx, escrowKey(a.ContractID)); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prev, ok := r.store.escrows[a.ContractID]
	if !ok || prev.ID != a.ID {
		return fmt.Errorf("escrow account not found: %s", a.ID)
	}
	r.store.escrows[a.ContractID] = *a
	t.onRollback(func() { r.store.escrows[prev.ContractID] = prev })
	return nil
}
