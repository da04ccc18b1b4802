package memory

import (
	"context"
	"sort"
	"time"

	"builderhub-payments/internal/core/domain"
)

// SettingsRepo implements ports.SettingsRepository.
type SettingsRepo struct {
	store *Store
}

func NewSettingsRepo(store *Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Set upserts one platform setting override.
func (r *SettingsRepo) Set(key, value string) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.settings[key] = domain.PlatformSetting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
}

func (r *SettingsRepo) List(ctx context.Context) ([]domain.PlatformSetting, error) {
	r.store.mu.RLock()
	out := make([]domain.PlatformSetting, 0, len(r.store.settings))
	for _, s := range r.store.settings {
		out = append(out, s)
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	store *Store
}

func NewAuditRepo(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

func (r *AuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.audit = append(r.store.audit, *entry)
	return nil
}

// Entries returns a copy of the recorded audit trail.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.AuditLog, len(r.store.audit))
	copy(out, r.store.audit)
	return out
}
