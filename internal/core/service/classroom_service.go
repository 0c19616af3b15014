package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuskit/school-admin-api/internal/api/metrics"
	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/ports"
)

// ClassroomService implements the admin use-cases over classrooms.
type ClassroomService struct {
	repo   ports.ClassroomRepository
	cache  OverviewCache
	audit  AuditRecorder
	logger zerolog.Logger
}

func NewClassroomService(repo ports.ClassroomRepository, cache OverviewCache, audit AuditRecorder, logger zerolog.Logger) *ClassroomService {
	return &ClassroomService{repo: repo, cache: cache, audit: audit, logger: logger}
}

// Create persists a new classroom. Start/end times and days are stored as
// given; schedules are not checked against other classrooms for overlap.
func (s *ClassroomService) Create(ctx context.Context, input ports.CreateClassroomInput) (*domain.Classroom, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Classroom{
		Name:      input.Name,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Days:      input.Days,
		CreatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("classroom", input.Name).Msg("failed to create classroom")
		return nil, err
	}

	s.invalidateOverview(ctx)
	s.audit.Record(domain.AuditEntry{
		Actor:   input.Actor,
		Action:  "create_classroom",
		Subject: created.Name,
		At:      now,
	})

	s.logger.Info().Str("classroom", created.Name).Msg("classroom created")
	return created, nil
}

// AssignTeacher stores teacherName on the named classroom. The name is not
// verified against the accounts collection.
func (s *ClassroomService) AssignTeacher(ctx context.Context, teacherName, classroomName, actor string) (*domain.Classroom, error) {
	updated, err := s.repo.SetAssignedTeacher(ctx, classroomName, teacherName)
	if err != nil {
		return nil, err
	}

	metrics.TeacherAssignmentsTotal.Inc()
	s.invalidateOverview(ctx)
	s.audit.Record(domain.AuditEntry{
		Actor:   actor,
		Action:  "assign_teacher",
		Subject: teacherName + " -> " + classroomName,
		At:      time.Now().UTC(),
	})

	s.logger.Info().Str("teacher", teacherName).Str("classroom", classroomName).Msg("teacher assigned")
	return updated, nil
}

func (s *ClassroomService) List(ctx context.Context) ([]*domain.Classroom, error) {
	return s.repo.List(ctx)
}

func (s *ClassroomService) invalidateOverview(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("overview cache invalidation failed")
	}
}
