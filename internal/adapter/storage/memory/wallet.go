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

func walletKey(id uuid.UUID) string { return "wallet:" + id.String() }

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	store *Store
}

func NewWalletRepo(store *Store) *WalletRepo {
	return &WalletRepo{store: store}
}

func (r *WalletRepo) GetByArtisanID(ctx context.Context, artisanID uuid.UUID) (*domain.WalletBalance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	w, ok := r.store.wallets[artisanID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *WalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, artisanID uuid.UUID) (*domain.WalletBalance, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := t.lock(ctx, walletKey(artisanID)); err != nil {
		return nil, err
	}
	return r.GetByArtisanID(ctx, artisanID)
}

func (r *WalletRepo) GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, artisanID uuid.UUID) (*domain.WalletBalance, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := t.lock(ctx, walletKey(artisanID)); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.wallets[artisanID]
	if !ok {
		now := time.Now().UTC()
		w = domain.WalletBalance{ArtisanID: artisanID, CreatedAt: now, UpdatedAt: now}
		r.store.wallets[artisanID] = w
		t.onRollback(func() { delete(r.store.wallets, artisanID) })
	}
	return &w, nil
}

// Update requires the caller to hold the wallet lock in tx.
func (r *WalletRepo) Update(ctx context.Context, tx pgx.Tx, w *domain.WalletBalance) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := t.lock(ctx, walletKey(w.ArtisanID)); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prev, ok := r.store.wallets[w.ArtisanID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", w.ArtisanID)
	}
	r.store.wallets[w.ArtisanID] = *w
	t.onRollback(func() { r.store.wallets[w.ArtisanID] = prev })
	return nil
}

// LedgerRepo implements ports.WalletLedgerRepository.
type LedgerRepo struct {
	store *Store
}

func NewLedgerRepo(store *Store) *LedgerRepo {
	return &LedgerRepo{store: store}
}

func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.WalletTransaction) error {
	t, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := t.lock(ctx, walletKey(entry.ArtisanID)); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.wallets[entry.ArtisanID]; !ok {
		return fmt.Errorf("append ledger entry: wallet %s does not exist", entry.ArtisanID)
	}
	artisan := entry.ArtisanID
	n := len(r.store.ledger[artisan])
	r.store.ledger[artisan] = append(r.store.ledger[artisan], *entry)
	t.onRollback(func() { r.store.ledger[artisan] = r.store.ledger[artisan][:n] })
	return nil
}

// GetByReference returns the first entry recorded with reference.
func (r *LedgerRepo) GetByReference(ctx context.Context, artisanID uuid.UUID, reference string) (*domain.WalletTransaction, error) {
	if reference == "" {
		return nil, nil
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, e := range r.store.ledger[artisanID] {
		if e.Reference == reference {
			return &e, nil
		}
	}
	return nil, nil
}

// ListByArtisan pages through the ledger newest first.
func (r *LedgerRepo) ListByArtisan(ctx context.Context, artisanID uuid.UUID, page, pageSize int) ([]domain.WalletTransaction, int64, error) {
	r.store.mu.RLock()
	stored := r.store.ledger[artisanID]
	entries := make([]domain.WalletTransaction, len(stored))
	for i, e := range stored {
		entries[len(stored)-1-i] = e
	}
	r.store.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return paginate(entries, page, pageSize), int64(len(entries)), nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
