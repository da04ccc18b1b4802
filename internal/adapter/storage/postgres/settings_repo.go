package postgres

import (
	"context"
	"fmt"

	"builderhub-payments/internal/core/domain"
)

// SettingsRepo implements ports.SettingsRepository over platform_settings.
type SettingsRepo struct {
	pool Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// List returns every override row.
func (r *SettingsRepo) List(ctx context.Context) ([]domain.PlatformSetting, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value, updated_at FROM platform_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list platform settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.PlatformSetting
	for rows.Next() {
		var s domain.PlatformSetting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan platform setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
