package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func escrowRow(a *domain.EscrowAccount) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "contract_id", "total_amount", "amount_deposited", "amount_confirmed", "amount_released",
		"amount_held", "status", "created_at", "updated_at",
	}).AddRow(
		a.ID, a.ContractID, a.TotalAmount, a.AmountDeposited, a.AmountConfirmed, a.AmountReleased,
		a.AmountHeld, a.Status, a.CreatedAt, a.UpdatedAt,
	)
}

func newTestEscrow() *domain.EscrowAccount {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.EscrowAccount{
		ID:              uuid.New(),
		ContractID:      uuid.New(),
		TotalAmount:     150000,
		AmountDeposited: 45000,
		AmountConfirmed: 45000,
		AmountHeld:      45000,
		Status:          domain.EscrowStatusFinance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestEscrowRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	a := newTestEscrow()
	args := []any{
		a.ID, a.ContractID, a.TotalAmount, a.AmountDeposited, a.AmountConfirmed, a.AmountReleased,
		a.AmountHeld, a.Status, a.CreatedAt, a.UpdatedAt,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO escrow_accounts .+ ON CONFLICT \\(contract_id\\) DO NOTHING").
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO escrow_accounts").
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), tx, a)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(context.Background(), tx, a)
	require.NoError(t, err)
	assert.False(t, created, "a second account for the same contract must be ignored")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	a := newTestEscrow()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO escrow_accounts").
		WillReturnError(errors.New("connection reset"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), tx, a)
	assert.False(t, created)
	assert.ErrorContains(t, err, "insert escrow account")
}

func TestEscrowRepo_GetByContractID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	a := newTestEscrow()

	mock.ExpectQuery("SELECT .+ FROM escrow_accounts WHERE contract_id").
		WithArgs(a.ContractID).
		WillReturnRows(escrowRow(a))

	got, err := repo.GetByContractID(context.Background(), a.ContractID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(45000), got.AmountHeld)
	assert.Equal(t, domain.EscrowStatusFinance, got.Status)
}

func TestEscrowRepo_GetByContractIDForUpdate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	contractID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM escrow_accounts WHERE contract_id = .+ FOR UPDATE").
		WithArgs(contractID).
		WillReturnError(pgx.ErrNoRows)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByContractIDForUpdate(context.Background(), tx, contractID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestEscrowRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	a := newTestEscrow()
	require.NoError(t, a.Release(20000))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE escrow_accounts").
		WithArgs(a.TotalAmount, a.AmountDeposited, a.AmountConfirmed, a.AmountReleased, a.AmountHeld, a.Status, a.UpdatedAt, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Update(context.Background(), tx, a))
	assert.Equal(t, int64(25000), a.AmountHeld)
	assert.Equal(t, domain.EscrowStatusEnCours, a.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
