package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/ports"
)

const defaultAuditLimit = 50

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation backed by repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit entry dequeued by the dispatcher.
func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if entry.Actor == "" || entry.Action == "" {
		return fmt.Errorf("process audit entry: missing actor or action")
	}
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("process audit entry: %w", err)
	}

	s.log.Debug().
		Str("actor", entry.Actor).
		Str("action", entry.Action).
		Str("subject", entry.Subject).
		Msg("audit entry recorded")
	return nil
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultAuditLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
