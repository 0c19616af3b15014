package ports

import (
	"context"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

// AuditRepository persists admin-action audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// AuditService processes audit entries dequeued by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}
