package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentMethodRepo implements ports.PaymentMethodRepository.
type PaymentMethodRepo struct {
	store *Store
}

func NewPaymentMethodRepo(store *Store) *PaymentMethodRepo {
	return &PaymentMethodRepo{store: store}
}

func ownerKey(owner uuid.UUID) string { return "methods:" + owner.String() }

func (r *PaymentMethodRepo) Create(ctx context.Context, tx pgx.Tx, m *domain.PaymentMethod) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := t.lock(ctx, ownerKey(m.OwnerID)); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.methods[m.ID]; ok {
		return fmt.Errorf("insert payment method: duplicate id %s", m.ID)
	}
	id := m.ID
	r.store.methods[id] = *m
	t.onRollback(func() { delete(r.store.methods, id) })
	return nil
}

func (r *PaymentMethodRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentMethod, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m, ok := r.store.methods[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// ListByOwner returns the owner's methods, default first then newest.
func (r *PaymentMethodRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.PaymentMethod, error) {
	r.store.mu.RLock()
	var out []domain.PaymentMethod
	for _, m := range r.store.methods {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PaymentMethodRepo) SetDefault(ctx context.Context, tx pgx.Tx, ownerID, id uuid.UUID) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := t.lock(ctx, ownerKey(ownerID)); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	target, ok := r.store.methods[id]
	if !ok || target.OwnerID != ownerID {
		return fmt.Errorf("payment method not found: %s", id)
	}

	now := time.Now().UTC()
	for mid, m := range r.store.methods {
		if m.OwnerID != ownerID || m.IsDefault == (mid == id) {
			continue
		}
		prev := m
		m.IsDefault = mid == id
		m.UpdatedAt = now
		r.store.methods[mid] = m
		t.onRollback(func() { r.store.methods[prev.ID] = prev })
	}
	return nil
}

func txnKey(id uuid.UUID) string { return "txn:" + id.String() }

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	store *Store
}

func NewTransactionRepo(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := t.lock(ctx, txnKey(txn.ID)); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.txns[txn.ID]; ok {
		return fmt.Errorf("insert transaction: duplicate id %s", txn.ID)
	}
	id := txn.ID
	r.store.txns[id] = cloneTransaction(*txn)
	t.onRollback(func() { delete(r.store.txns, id) })
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	txn, ok := r.store.txns[id]
	if !ok {
		return nil, nil
	}
	out := cloneTransaction(txn)
	return &out, nil
}

func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Transaction, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := t.lock(ctx, txnKey(id)); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// GetByProviderReference matches either provider identifier, newest first.
func (r *TransactionRepo) GetByProviderReference(ctx context.Context, provider domain.ProviderID, reference string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var found *domain.Transaction
	for _, txn := range r.store.txns {
		if txn.Provider != provider || !matchesReference(txn, reference) {
			continue
		}
		if found == nil || txn.CreatedAt.After(found.CreatedAt) {
			c := cloneTransaction(txn)
			found = &c
		}
	}
	return found, nil
}

func matchesReference(txn domain.Transaction, ref string) bool {
	return (txn.ProviderReference != nil && *txn.ProviderReference == ref) ||
		(txn.ProviderTransactionID != nil && *txn.ProviderTransactionID == ref)
}

func (r *TransactionRepo) Update(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := t.lock(ctx, txnKey(txn.ID)); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prev, ok := r.store.txns[txn.ID]
	if !ok {
		return fmt.Errorf("transaction not found: %s", txn.ID)
	}
	r.store.txns[txn.ID] = cloneTransaction(*txn)
	t.onRollback(func() { r.store.txns[prev.ID] = prev })
	return nil
}

// ListByContract returns every payment of a contract, newest first.
func (r *TransactionRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	var out []domain.Transaction
	for _, txn := range r.store.txns {
		if txn.ContractID == contractID {
			out = append(out, cloneTransaction(txn))
		}
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// cloneTransaction copies the pointer fields so callers cannot mutate stored rows.
func cloneTransaction(t domain.Transaction) domain.Transaction {
	t.PaymentMethodID = clonePtr(t.PaymentMethodID)
	t.ProviderTransactionID = clonePtr(t.ProviderTransactionID)
	t.ProviderReference = clonePtr(t.ProviderReference)
	t.CheckoutURL = clonePtr(t.CheckoutURL)
	t.FailureReason = clonePtr(t.FailureReason)
	t.ProcessedAt = clonePtr(t.ProcessedAt)
	return t
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
