package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuskit/school-admin-api/internal/api/metrics"
	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/ports"
)

// OverviewCache abstracts the dashboard aggregate cache (Redis).
type OverviewCache interface {
	Get(ctx context.Context) (*ports.Overview, bool, error)
	Set(ctx context.Context, overview *ports.Overview) error
	Invalidate(ctx context.Context) error
}

// AuditRecorder enqueues an audit entry without blocking the request.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AccountService implements the admin use-cases over accounts.
type AccountService struct {
	accounts   ports.AccountRepository
	classrooms ports.ClassroomRepository
	cache      OverviewCache
	audit      AuditRecorder
	logger     zerolog.Logger
}

func NewAccountService(
	accounts ports.AccountRepository,
	classrooms ports.ClassroomRepository,
	cache OverviewCache,
	audit AuditRecorder,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		accounts:   accounts,
		classrooms: classrooms,
		cache:      cache,
		audit:      audit,
		logger:     logger,
	}
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

// ListStudents returns all student accounts. An empty set is an error: the
// dashboard contract reports it as a 404, not an empty list.
func (s *AccountService) ListStudents(ctx context.Context) ([]*domain.Account, error) {
	students, err := s.accounts.ListByRole(ctx, domain.RoleStudent)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, domain.ErrNoStudents
	}
	return students, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if input.Role != domain.RoleTeacher && input.Role != domain.RoleStudent {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.accounts.Create(ctx, &domain.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create account")
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(created.Role).Inc()
	s.invalidateOverview(ctx)
	s.audit.Record(domain.AuditEntry{
		Actor:   input.Actor,
		Action:  "create_" + roleAction(created.Role),
		Subject: created.Email,
		At:      now,
	})

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("account created")
	return created, nil
}

func (s *AccountService) UpdateStudent(ctx context.Context, id string, input ports.UpdateStudentInput) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		account.Name = input.Name
	}
	if input.Email != "" {
		account.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = string(hash)
	}
	account.UpdatedAt = time.Now().UTC()

	updated, err := s.accounts.Update(ctx, account)
	if err != nil {
		return nil, err
	}

	s.invalidateOverview(ctx)
	s.audit.Record(domain.AuditEntry{
		Actor:   input.Actor,
		Action:  "update_student",
		Subject: updated.Email,
		At:      account.UpdatedAt,
	})
	return updated, nil
}

func (s *AccountService) DeleteStudent(ctx context.Context, id string, actor string) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	s.invalidateOverview(ctx)
	s.audit.Record(domain.AuditEntry{
		Actor:   actor,
		Action:  "delete_student",
		Subject: id,
		At:      time.Now().UTC(),
	})
	return nil
}

// AssignedClassroom resolves the teacher account first, then matches a
// classroom on the account's *current* name. The two lookup misses stay
// distinct so callers can tell a missing account from an unassigned teacher.
func (s *AccountService) AssignedClassroom(ctx context.Context, teacherID string) (*domain.Classroom, error) {
	account, err := s.accounts.FindByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return s.classrooms.FindByAssignedTeacher(ctx, account.Name)
}

// Overview collects teachers, students and classrooms for the dashboard's
// single aggregate fetch. Empty sections are empty slices here, unlike
// ListStudents: the dashboard renders empty tables.
func (s *AccountService) Overview(ctx context.Context) (*ports.Overview, error) {
	if cached, ok, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("overview cache read failed, falling through")
	} else if ok {
		metrics.OverviewCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.OverviewCacheTotal.WithLabelValues("miss").Inc()
	}

	teachers, err := s.accounts.ListByRole(ctx, domain.RoleTeacher)
	if err != nil {
		return nil, err
	}
	students, err := s.accounts.ListByRole(ctx, domain.RoleStudent)
	if err != nil {
		return nil, err
	}
	classrooms, err := s.classrooms.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &ports.Overview{
		Teachers:   teachers,
		Students:   students,
		Classrooms: classrooms,
	}
	if err := s.cache.Set(ctx, overview); err != nil {
		s.logger.Warn().Err(err).Msg("overview cache write failed")
	}
	return overview, nil
}

func (s *AccountService) invalidateOverview(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("overview cache invalidation failed")
	}
}

func roleAction(role string) string {
	if role == domain.RoleTeacher {
		return "teacher"
	}
	return "student"
}
