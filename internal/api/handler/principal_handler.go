package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/ports"
)

// PrincipalHandler handles the principal dashboard's account administration.
type PrincipalHandler struct {
	accounts ports.AccountService
	audit    ports.AuditService
}

func NewPrincipalHandler(accounts ports.AccountService, audit ports.AuditService) *PrincipalHandler {
	return &PrincipalHandler{accounts: accounts, audit: audit}
}

// Overview returns teachers, students and classrooms in a single response.
//
// @Summary      Dashboard aggregate of teachers, students and classrooms
// @Tags         principal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/principal/overview [get]
func (h *PrincipalHandler) Overview(c echo.Context) error {
	overview, err := h.accounts.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// ListStudents returns all student accounts. An empty set is a 404, matching
// the dashboard contract.
//
// @Summary      List all students
// @Tags         principal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  studentsResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/principal/students [get]
func (h *PrincipalHandler) ListStudents(c echo.Context) error {
	students, err := h.accounts.ListStudents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, studentsResponse{Students: students})
}

// CreateStudent creates a student account.
//
// @Summary      Create a student
// @Tags         principal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "Student details"
// @Success      201   {object}  accountResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/principal/students [post]
func (h *PrincipalHandler) CreateStudent(c echo.Context) error {
	return h.createAccount(c, domain.RoleStudent)
}

// CreateTeacher creates a teacher account.
//
// @Summary      Create a teacher
// @Tags         principal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "Teacher details"
// @Success      201   {object}  accountResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/principal/teachers [post]
func (h *PrincipalHandler) CreateTeacher(c echo.Context) error {
	return h.createAccount(c, domain.RoleTeacher)
}

func (h *PrincipalHandler) createAccount(c echo.Context, role string) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, actor, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
		Actor:    actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, accountResponse{Account: account})
}

// UpdateStudent updates a student's name, email and optionally password.
//
// @Summary      Update a student
// @Tags         principal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Student id"
// @Param        body  body      updateStudentRequest  true  "Fields to update"
// @Success      200   {object}  accountResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/principal/students/{id} [put]
func (h *PrincipalHandler) UpdateStudent(c echo.Context) error {
	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, actor, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.UpdateStudent(c.Request().Context(), c.Param("id"), ports.UpdateStudentInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Actor:    actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, accountResponse{Account: account})
}

// DeleteStudent hard-deletes a student account.
//
// @Summary      Delete a student
// @Tags         principal
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Student id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/principal/students/{id} [delete]
func (h *PrincipalHandler) DeleteStudent(c echo.Context) error {
	_, actor, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.accounts.DeleteStudent(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "student deleted"})
}

// Audit lists the most recent admin actions.
//
// @Summary      Recent admin-action audit trail
// @Tags         principal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auditResponse
// @Router       /api/v1/principal/audit [get]
func (h *PrincipalHandler) Audit(c echo.Context) error {
	entries, err := h.audit.Recent(c.Request().Context(), 0)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditResponse{Entries: entries})
}
