package postgres

import (
	"context"
	"testing"
	"time"

	"builderhub-payments/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerRowColumns() []string {
	return []string{"id", "artisan_id", "type", "amount", "balance_after", "description",
		"reference", "related_job_id", "status", "created_at"}
}

func ledgerRow(rows *pgxmock.Rows, e *domain.WalletTransaction) *pgxmock.Rows {
	return rows.AddRow(
		e.ID, e.ArtisanID, e.Type, e.Amount, e.BalanceAfter, e.Description,
		nullString(e.Reference), e.RelatedJobID, e.Status, e.CreatedAt,
	)
}

func newLedgerEntry(artisanID uuid.UUID, typ domain.WalletEntryType, amount, after int64, ref string) *domain.WalletTransaction {
	return &domain.WalletTransaction{
		ID:           uuid.New(),
		ArtisanID:    artisanID,
		Type:         typ,
		Amount:       amount,
		BalanceAfter: after,
		Description:  "Recharge du portefeuille",
		Reference:    ref,
		Status:       domain.WalletEntryCompleted,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestLedgerRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	e := newLedgerEntry(uuid.New(), domain.WalletEntryDebit, 1000, 4000, "")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_transactions").
		WithArgs(e.ID, e.ArtisanID, e.Type, e.Amount, e.BalanceAfter,
			e.Description, (*string)(nil), e.RelatedJobID, e.Status, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Append(context.Background(), tx, e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_GetByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	artisanID := uuid.New()
	e := newLedgerEntry(artisanID, domain.WalletEntryRecharge, 5000, 5000, "RCH-001")

	mock.ExpectQuery("SELECT .+ FROM wallet_transactions WHERE artisan_id = .+ AND reference = .+ ORDER BY created_at ASC LIMIT 1").
		WithArgs(artisanID, "RCH-001").
		WillReturnRows(ledgerRow(pgxmock.NewRows(ledgerRowColumns()), e))
	mock.ExpectQuery("SELECT .+ FROM wallet_transactions").
		WithArgs(artisanID, "RCH-404").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByReference(context.Background(), artisanID, "RCH-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "RCH-001", got.Reference)
	assert.Equal(t, int64(5000), got.BalanceAfter)

	missing, err := repo.GetByReference(context.Background(), artisanID, "RCH-404")
	assert.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepo_ListByArtisan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepo(mock)
	artisanID := uuid.New()
	debit := newLedgerEntry(artisanID, domain.WalletEntryDebit, 1000, 4000, "")
	recharge := newLedgerEntry(artisanID, domain.WalletEntryRecharge, 5000, 5000, "RCH-1")

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(artisanID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	rows := pgxmock.NewRows(ledgerRowColumns())
	ledgerRow(rows, debit)
	ledgerRow(rows, recharge)
	mock.ExpectQuery("SELECT .+ FROM wallet_transactions WHERE artisan_id = .+ ORDER BY created_at DESC LIMIT").
		WithArgs(artisanID, 2, 2).
		WillReturnRows(rows)

	entries, total, err := repo.ListByArtisan(context.Background(), artisanID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.WalletEntryDebit, entries[0].Type)
	assert.Empty(t, entries[0].Reference)
	assert.Equal(t, "RCH-1", entries[1].Reference)
	assert.NoError(t, mock.ExpectationsWereMet())
}
