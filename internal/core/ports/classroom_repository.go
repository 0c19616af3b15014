package ports

import (
	"context"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

// ClassroomRepository defines persistence for the classrooms collection.
type ClassroomRepository interface {
	Create(ctx context.Context, classroom *domain.Classroom) (*domain.Classroom, error)
	FindByName(ctx context.Context, name string) (*domain.Classroom, error)
	// FindByAssignedTeacher looks up the classroom whose assigned_teacher
	// string equals teacherName. Returns domain.ErrNoClassroomAssigned on miss.
	FindByAssignedTeacher(ctx context.Context, teacherName string) (*domain.Classroom, error)
	List(ctx context.Context) ([]*domain.Classroom, error)
	// SetAssignedTeacher updates the named classroom's assigned_teacher field
	// and returns the updated document.
	SetAssignedTeacher(ctx context.Context, classroomName, teacherName string) (*domain.Classroom, error)
}
