// Package memory is a process-local storage backend. Row locks are emulated
// with per-key locks held by a Tx until Commit or Rollback, and writes made
// inside a Tx are undone on Rollback.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errUnsupported = errors.New("memory: raw SQL is not supported")

// Store holds every table of the memory backend.
type Store struct {
	mu sync.RWMutex

	wallets  map[uuid.UUID]domain.WalletBalance
	ledger   map[uuid.UUID][]domain.WalletTransaction
	methods  map[uuid.UUID]domain.PaymentMethod
	txns     map[uuid.UUID]domain.Transaction
	escrows  map[uuid.UUID]domain.EscrowAccount
	settings map[string]domain.PlatformSetting
	audit    []domain.AuditLog

	locksMu sync.Mutex
	locks   map[string]chan struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		wallets:  make(map[uuid.UUID]domain.WalletBalance),
		ledger:   make(map[uuid.UUID][]domain.WalletTransaction),
		methods:  make(map[uuid.UUID]domain.PaymentMethod),
		txns:     make(map[uuid.UUID]domain.Transaction),
		escrows:  make(map[uuid.UUID]domain.EscrowAccount),
		settings: make(map[string]domain.PlatformSetting),
		locks:    make(map[string]chan struct{}),
	}
}

func (s *Store) lockFor(key string) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[key] = l
	}
	return l
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{store: s, held: make(map[string]struct{})}, nil
}

// Tx is a pgx.Tx whose only meaningful operations are Commit and Rollback.
type Tx struct {
	store *Store

	mu   sync.Mutex
	held map[string]struct{}
	undo []func()
	done bool
}

func asTx(tx pgx.Tx) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok || t == nil {
		return nil, fmt.Errorf("memory: transaction %T was not started by this store", tx)
	}
	return t, nil
}

// lock acquires the row lock for key, waiting for the holder to finish.
func (t *Tx) lock(ctx context.Context, key string) error {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return pgx.ErrTxClosed
	}
	if _, ok := t.held[key]; ok {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	select {
	case t.store.lockFor(key) <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for lock %s: %w", key, ctx.Err())
	}

	t.mu.Lock()
	t.held[key] = struct{}{}
	t.mu.Unlock()
	return nil
}

// onRollback registers fn to run under the store lock if the Tx rolls back.
// Callers hold store.mu.
func (t *Tx) onRollback(fn func()) {
	t.mu.Lock()
	t.undo = append(t.undo, fn)
	t.mu.Unlock()
}

func (t *Tx) finish(rollback bool) error {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return pgx.ErrTxClosed
	}
	t.done = true
	undo, held := t.undo, t.held
	t.undo, t.held = nil, nil
	t.mu.Unlock()

	if rollback && len(undo) > 0 {
		t.store.mu.Lock()
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		t.store.mu.Unlock()
	}

	for key := range held {
		<-t.store.lockFor(key)
	}
	return nil
}

func (t *Tx) Commit(ctx context.Context) error   { return t.finish(false) }
func (t *Tx) Rollback(ctx context.Context) error { return t.finish(true) }

func (t *Tx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, errUnsupported }
func (t *Tx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errUnsupported
}
func (t *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *Tx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *Tx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errUnsupported
}
func (t *Tx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errUnsupported
}
func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errUnsupported
}
func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return errRow{}
}
func (t *Tx) Conn() *pgx.Conn { return nil }

type errRow struct{}

func (errRow) Scan(dest ...any) error { return errUnsupported }

// HealthCheck implements ports.HealthChecker for the memory backend.
type HealthCheck struct{}

func (HealthCheck) Ping(ctx context.Context) error { return ctx.Err() }
func (HealthCheck) Name() string                   { return "memory" }
