package service

import (
	"context"
	"errors"
	"testing"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testDefaults = domain.FeeSettings{PlatformFeeRate: 0.05, ApplicationFee: 1000}

func TestSettingsService_DefaultsWithoutRepo(t *testing.T) {
	svc := NewSettingsService(nil, testDefaults, zerolog.Nop())

	got, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDefaults, got)
}

func TestSettingsService_OverridesAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, testDefaults, zerolog.Nop())
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return([]domain.PlatformSetting{
		{Key: domain.SettingPlatformFeeRate, Value: "0.07"},
		{Key: domain.SettingWalletApplicationFee, Value: "1500"},
	}, nil).Times(1)

	got, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.07, got.PlatformFeeRate)
	assert.Equal(t, int64(1500), got.ApplicationFee)

	// Served from cache.
	again, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSettingsService_InvalidateReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, testDefaults, zerolog.Nop())
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().List(ctx).Return(nil, nil),
		repo.EXPECT().List(ctx).Return([]domain.PlatformSetting{
			{Key: domain.SettingPlatformFeeRate, Value: "0.1"},
		}, nil),
	)

	first, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.05, first.PlatformFeeRate)

	svc.Invalidate()

	second, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.1, second.PlatformFeeRate)
}

func TestSettingsService_IgnoresInvalidRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, testDefaults, zerolog.Nop())

	repo.EXPECT().List(gomock.Any()).Return([]domain.PlatformSetting{
		{Key: domain.SettingPlatformFeeRate, Value: "1.5"},
		{Key: domain.SettingWalletApplicationFee, Value: "abc"},
		{Key: "unrelated", Value: "x"},
	}, nil)

	got, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDefaults, got)
}

func TestSettingsService_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, testDefaults, zerolog.Nop())

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Current(context.Background())
	require.Error(t, err)
	assertAppError(t, err, "SYS_001")
}
