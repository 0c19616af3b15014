package ports

import (
	"context"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

// CreateClassroomInput carries the data for creating a classroom. Times and
// days are free-form strings; no overlap validation is performed.
type CreateClassroomInput struct {
	Name      string
	StartTime string
	EndTime   string
	Days      string
	Actor     string
}

// ClassroomService defines the admin use-cases over classrooms.
type ClassroomService interface {
	Create(ctx context.Context, input CreateClassroomInput) (*domain.Classroom, error)
	// AssignTeacher sets the named classroom's assigned teacher. teacherName
	// is stored as given; it is not checked against existing accounts.
	AssignTeacher(ctx context.Context, teacherName, classroomName, actor string) (*domain.Classroom, error)
	List(ctx context.Context) ([]*domain.Classroom, error)
}
