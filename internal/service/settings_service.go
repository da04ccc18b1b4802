package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"builderhub-payments/internal/core/domain"
	"builderhub-payments/internal/core/ports"
	"builderhub-payments/pkg/apperror"

	"github.com/rs/zerolog"
)

// settingsService implements ports.SettingsService.
// Configuration values are the defaults; platform_settings rows override them.
type settingsService struct {
	repo     ports.SettingsRepository
	defaults domain.FeeSettings
	log      zerolog.Logger

	mu     sync.RWMutex
	cached *domain.FeeSettings
}

// NewSettingsService creates a settings service. A nil repo serves the defaults only.
func NewSettingsService(repo ports.SettingsRepository, defaults domain.FeeSettings, log zerolog.Logger) ports.SettingsService {
	return &settingsService{repo: repo, defaults: defaults, log: log}
}

// Current returns the cached snapshot, loading it on first use or after Invalidate.
func (s *settingsService) Current(ctx context.Context) (domain.FeeSettings, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}
	return s.Reload(ctx)
}

// Reload re-reads overrides from storage and replaces the snapshot.
func (s *settingsService) Reload(ctx context.Context) (domain.FeeSettings, error) {
	next := s.defaults
	if s.repo != nil {
		rows, err := s.repo.List(ctx)
		if err != nil {
			return domain.FeeSettings{}, apperror.InternalError(fmt.Errorf("load platform settings: %w", err))
		}
		for _, row := range rows {
			s.apply(&next, row)
		}
	}

	s.mu.Lock()
	s.cached = &next
	s.mu.Unlock()

	s.log.Info().
		Float64("platform_fee_rate", next.PlatformFeeRate).
		Int64("wallet_application_fee", next.ApplicationFee).
		Msg("platform settings loaded")
	return next, nil
}

// Invalidate drops the snapshot; the next Current call reloads.
func (s *settingsService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// apply ignores malformed or out-of-range rows, keeping the previous value.
func (s *settingsService) apply(dst *domain.FeeSettings, row domain.PlatformSetting) {
	switch row.Key {
	case domain.SettingPlatformFeeRate:
		v, err := strconv.ParseFloat(row.Value, 64)
		if err != nil || v < 0 || v >= 1 {
			s.log.Warn().Str("key", row.Key).Str("value", row.Value).Msg("ignoring invalid platform setting")
			return
		}
		dst.PlatformFeeRate = v
	case domain.SettingWalletApplicationFee:
		v, err := strconv.ParseInt(row.Value, 10, 64)
		if err != nil || v <= 0 {
			s.log.Warn().Str("key", row.Key).Str("value", row.Value).Msg("ignoring invalid platform setting")
			return
		}
		dst.ApplicationFee = v
	}
}
