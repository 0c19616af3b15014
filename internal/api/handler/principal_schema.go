package handler

import (
	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/ports"
)

type createAccountRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// updateStudentRequest: all fields optional, password re-hashed when present.
type updateStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type createClassroomRequest struct {
	Name      string `json:"name"       validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
	Days      string `json:"days"       validate:"required"`
}

type assignTeacherRequest struct {
	TeacherName   string `json:"teacher_name"   validate:"required"`
	ClassroomName string `json:"classroom_name" validate:"required"`
}

type studentsResponse struct {
	Students []*domain.Account `json:"students"`
}

type classroomResponse struct {
	Classroom *domain.Classroom `json:"classroom"`
}

type overviewResponse = ports.Overview

type auditResponse struct {
	Entries []*domain.AuditEntry `json:"entries"`
}

type messageResponse struct {
	Message string `json:"message"`
}
