package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuskit/school-admin-api/internal/core/ports"
)

// ClassroomHandler handles classroom administration.
type ClassroomHandler struct {
	service ports.ClassroomService
}

func NewClassroomHandler(service ports.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{service: service}
}

// Create persists a new classroom. Schedules are free-form strings; there is
// no double-booking detection.
//
// @Summary      Create a classroom
// @Tags         principal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClassroomRequest  true  "Classroom details"
// @Success      201   {object}  classroomResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/principal/classrooms [post]
func (h *ClassroomHandler) Create(c echo.Context) error {
	var req createClassroomRequest
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

	classroom, err := h.service.Create(c.Request().Context(), ports.CreateClassroomInput{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Days:      req.Days,
		Actor:     actor,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, classroomResponse{Classroom: classroom})
}

// Assign sets a classroom's assigned teacher by name. The teacher name is
// stored as given and not verified against existing accounts.
//
// @Summary      Assign a teacher to a classroom
// @Tags         principal
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignTeacherRequest  true  "Teacher and classroom names"
// @Success      200   {object}  classroomResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/principal/classrooms/assign [post]
func (h *ClassroomHandler) Assign(c echo.Context) error {
	var req assignTeacherRequest
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

	classroom, err := h.service.AssignTeacher(c.Request().Context(), req.TeacherName, req.ClassroomName, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, classroomResponse{Classroom: classroom})
}
