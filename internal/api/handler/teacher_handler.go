package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuskit/school-admin-api/internal/core/ports"
)

// TeacherHandler serves the teacher dashboard.
type TeacherHandler struct {
	accounts ports.AccountService
}

func NewTeacherHandler(accounts ports.AccountService) *TeacherHandler {
	return &TeacherHandler{accounts: accounts}
}

// AssignedClassroom resolves the caller's classroom by their current account
// name. A missing account and an unassigned teacher are distinct 404s.
//
// @Summary      Get the classroom assigned to the authenticated teacher
// @Tags         teacher
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  classroomResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/teacher/classroom [get]
func (h *TeacherHandler) AssignedClassroom(c echo.Context) error {
	accountID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	classroom, err := h.accounts.AssignedClassroom(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, classroomResponse{Classroom: classroom})
}
