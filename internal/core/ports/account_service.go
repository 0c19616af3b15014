package ports

import (
	"context"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

// CreateAccountInput carries the data for creating a teacher or student.
// Actor is the email of the authenticated caller, used for the audit trail.
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Actor    string
}

// UpdateStudentInput carries a student update. Password is optional; when
// non-empty it is re-hashed before storing.
type UpdateStudentInput struct {
	Name     string
	Email    string
	Password string
	Actor    string
}

// Overview is the aggregate the dashboard renders from a single fetch.
// Empty sections are empty slices, never an error.
type Overview struct {
	Teachers   []*domain.Account   `json:"teachers"`
	Students   []*domain.Account   `json:"students"`
	Classrooms []*domain.Classroom `json:"classrooms"`
}

// AccountService defines the admin use-cases over accounts.
type AccountService interface {
	Get(ctx context.Context, id string) (*domain.Account, error)
	// ListStudents returns all student accounts. An empty set is reported as
	// domain.ErrNoStudents: the dashboard contract treats it as a 404, not an
	// empty list.
	ListStudents(ctx context.Context) ([]*domain.Account, error)
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	UpdateStudent(ctx context.Context, id string, input UpdateStudentInput) (*domain.Account, error)
	DeleteStudent(ctx context.Context, id string, actor string) error
	// AssignedClassroom resolves the account by id, then looks up the
	// classroom whose assigned_teacher equals the account's current name.
	// The two misses are distinct: domain.ErrAccountNotFound when the account
	// does not exist, domain.ErrNoClassroomAssigned when no classroom matches.
	AssignedClassroom(ctx context.Context, teacherID string) (*domain.Classroom, error)
	// Overview returns teachers, students and classrooms in one call.
	Overview(ctx context.Context) (*Overview, error)
}
