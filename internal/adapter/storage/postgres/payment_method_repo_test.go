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

func paymentMethodRowColumns() []string {
	return []string{
		"id", "owner_id", "type", "provider", "display_name", "card_last4", "phone_masked",
		"phone_encrypted", "is_default", "is_verified", "created_at", "updated_at",
	}
}

func addPaymentMethodRow(rows *pgxmock.Rows, m *domain.PaymentMethod) *pgxmock.Rows {
	return rows.AddRow(
		m.ID, m.OwnerID, m.Type, m.Provider, m.DisplayName, m.CardLast4, m.PhoneMasked,
		nullString(m.PhoneEncrypted), m.IsDefault, m.IsVerified, m.CreatedAt, m.UpdatedAt,
	)
}

func newTestMobileMethod(owner uuid.UUID) *domain.PaymentMethod {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PaymentMethod{
		ID:             uuid.New(),
		OwnerID:        owner,
		Type:           domain.PaymentMethodMobileMoney,
		Provider:       domain.ProviderOrangeMoney,
		DisplayName:    "Orange Money",
		PhoneMasked:    strPtr("•••• 4567"),
		PhoneEncrypted: "deadbeef",
		IsDefault:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestPaymentMethodRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	m := newTestMobileMethod(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payment_methods").
		WithArgs(
			m.ID, m.OwnerID, m.Type, m.Provider, m.DisplayName, m.CardLast4, m.PhoneMasked,
			nullString(m.PhoneEncrypted), m.IsDefault, m.IsVerified, m.CreatedAt, m.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), tx, m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	m := newTestMobileMethod(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM payment_methods WHERE id").
		WithArgs(m.ID).
		WillReturnRows(addPaymentMethodRow(pgxmock.NewRows(paymentMethodRowColumns()), m))

	got, err := repo.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ProviderOrangeMoney, got.Provider)
	assert.Equal(t, "deadbeef", got.PhoneEncrypted)
	assert.Equal(t, "•••• 4567", *got.PhoneMasked)
	assert.Nil(t, got.CardLast4)
}

func TestPaymentMethodRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM payment_methods WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPaymentMethodRepo_ListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	owner := uuid.New()
	mobile := newTestMobileMethod(owner)
	cash := &domain.PaymentMethod{
		ID:          uuid.New(),
		OwnerID:     owner,
		Type:        domain.PaymentMethodCash,
		Provider:    domain.ProviderCash,
		DisplayName: "Espèces",
		IsVerified:  true,
		CreatedAt:   mobile.CreatedAt.Add(-time.Hour),
		UpdatedAt:   mobile.CreatedAt.Add(-time.Hour),
	}

	rows := pgxmock.NewRows(paymentMethodRowColumns())
	addPaymentMethodRow(rows, mobile)
	addPaymentMethodRow(rows, cash)

	mock.ExpectQuery("SELECT .+ FROM payment_methods WHERE owner_id = .+ ORDER BY is_default DESC").
		WithArgs(owner).
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsDefault)
	assert.Equal(t, domain.PaymentMethodCash, got[1].Type)
	assert.Empty(t, got[1].PhoneEncrypted)
}

func TestPaymentMethodRepo_SetDefault(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentMethodRepo(mock)
	owner, id := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payment_methods SET is_default = \\(id = \\$2\\)").
		WithArgs(owner, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectExec("UPDATE payment_methods").
		WithArgs(owner, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.SetDefault(context.Background(), tx, owner, id))
	assert.ErrorContains(t, repo.SetDefault(context.Background(), tx, owner, id), "payment method not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
