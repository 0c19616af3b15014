package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/ports"
)

type stubClassroomService struct {
	createFn func(ctx context.Context, input ports.CreateClassroomInput) (*domain.Classroom, error)
	assignFn func(ctx context.Context, teacherName, classroomName, actor string) (*domain.Classroom, error)
}

func (s *stubClassroomService) Create(ctx context.Context, input ports.CreateClassroomInput) (*domain.Classroom, error) {
	return s.createFn(ctx, input)
}

func (s *stubClassroomService) AssignTeacher(ctx context.Context, teacherName, classroomName, actor string) (*domain.Classroom, error) {
	return s.assignFn(ctx, teacherName, classroomName, actor)
}

func (s *stubClassroomService) List(context.Context) ([]*domain.Classroom, error) {
	return nil, nil
}

func TestClassroomHandler_Create(t *testing.T) {
	e := newTestEcho()
	service := &stubClassroomService{
		createFn: func(ctx context.Context, input ports.CreateClassroomInput) (*domain.Classroom, error) {
			if input.Name != "Room 101" {
				t.Fatalf("unexpected name: %s", input.Name)
			}
			return &domain.Classroom{ID: "cls_001", Name: input.Name, StartTime: input.StartTime, EndTime: input.EndTime, Days: input.Days}, nil
		},
	}
	handler := NewClassroomHandler(service)

	body := strings.NewReader(`{"name":"Room 101","start_time":"08:00","end_time":"09:30","days":"Mon,Wed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/principal/classrooms", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := principalContext(e, req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Room 101") {
		t.Fatalf("expected classroom in body, got %s", rec.Body.String())
	}
}

func TestClassroomHandler_Create_MissingSchedule(t *testing.T) {
	e := newTestEcho()
	handler := NewClassroomHandler(&stubClassroomService{})

	body := strings.NewReader(`{"name":"Room 101"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/principal/classrooms", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := principalContext(e, req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestClassroomHandler_Assign(t *testing.T) {
	e := newTestEcho()
	service := &stubClassroomService{
		assignFn: func(ctx context.Context, teacherName, classroomName, actor string) (*domain.Classroom, error) {
			if teacherName != "T. Smith" || classroomName != "Room 101" {
				t.Fatalf("unexpected args: %s / %s", teacherName, classroomName)
			}
			if actor != "principal@school.test" {
				t.Fatalf("expected actor from claims, got %q", actor)
			}
			return &domain.Classroom{ID: "cls_001", Name: classroomName, AssignedTeacher: teacherName}, nil
		},
	}
	handler := NewClassroomHandler(service)

	body := strings.NewReader(`{"teacher_name":"T. Smith","classroom_name":"Room 101"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/principal/classrooms/assign", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := principalContext(e, req, rec)

	if err := handler.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "T. Smith") {
		t.Fatalf("expected assigned teacher in body, got %s", rec.Body.String())
	}
}

func TestClassroomHandler_Assign_ClassroomMissing(t *testing.T) {
	e := newTestEcho()
	service := &stubClassroomService{
		assignFn: func(ctx context.Context, teacherName, classroomName, actor string) (*domain.Classroom, error) {
			return nil, domain.ErrClassroomNotFound
		},
	}
	handler := NewClassroomHandler(service)

	body := strings.NewReader(`{"teacher_name":"T. Smith","classroom_name":"Room 999"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/principal/classrooms/assign", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := principalContext(e, req, rec)

	if err := handler.Assign(c); err != domain.ErrClassroomNotFound {
		t.Fatalf("expected ErrClassroomNotFound to propagate, got %v", err)
	}
}

func TestTeacherHandler_AssignedClassroom(t *testing.T) {
	e := newTestEcho()
	accounts := &fakeAccountService{}
	handler := NewTeacherHandler(accounts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teacher/classroom", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("account_id", "acc_002")
	c.Set("email", "t@x.com")
	c.Set("role", domain.RoleTeacher)

	if err := handler.AssignedClassroom(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTeacherHandler_AssignedClassroom_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewTeacherHandler(&fakeAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teacher/classroom", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.AssignedClassroom(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
