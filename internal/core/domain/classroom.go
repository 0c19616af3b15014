package domain

import (
	"errors"
	"time"
)

var (
	ErrClassroomNotFound   = errors.New("classroom not found")
	ErrNoClassroomAssigned = errors.New("no classroom assigned to this teacher")
	ErrClassroomExists     = errors.New("classroom already exists")
)

// Classroom is a scheduled room/section. AssignedTeacher holds the teacher's
// name, not an id: renaming a teacher silently detaches them from the room,
// and nothing verifies the name matches an existing Teacher account. The
// dashboard contract depends on both behaviours, so they are pinned by tests
// rather than fixed here.
type Classroom struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	AssignedTeacher string    `json:"assigned_teacher,omitempty"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Days            string    `json:"days"`
	CreatedAt       time.Time `json:"created_at"`
}
