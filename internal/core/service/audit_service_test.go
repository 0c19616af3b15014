package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

type stubAuditRepo struct {
	inserted []*domain.AuditEntry
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	clone := *entry
	r.inserted = append(r.inserted, &clone)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit > len(r.inserted) {
		limit = len(r.inserted)
	}
	out := make([]*domain.AuditEntry, 0, limit)
	for i := len(r.inserted) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.inserted[i])
	}
	return out, nil
}

func TestAuditService_Process(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	entry := domain.AuditEntry{
		Actor:   "principal@school.test",
		Action:  "create_student",
		Subject: "s.lee@school.test",
		At:      time.Now().UTC(),
	}
	if err := svc.Process(context.Background(), entry); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Action != "create_student" {
		t.Fatalf("entry not persisted: %+v", repo.inserted)
	}
}

func TestAuditService_Process_Invalid(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), domain.AuditEntry{Subject: "x"}); err == nil {
		t.Fatalf("expected error for entry without actor/action")
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("invalid entry must not persist")
	}
}

func TestAuditService_Recent_DefaultLimit(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	for i := 0; i < 60; i++ {
		_ = svc.Process(context.Background(), domain.AuditEntry{
			Actor:  "principal@school.test",
			Action: "create_student",
			At:     time.Now().UTC(),
		})
	}

	entries, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != defaultAuditLimit {
		t.Fatalf("expected default limit %d, got %d", defaultAuditLimit, len(entries))
	}
}
