package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campuskit/school-admin-api/internal/core/domain"
	"github.com/campuskit/school-admin-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password, role string) (*domain.Account, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password, role string) (*domain.Account, error) {
	return s.registerFn(ctx, name, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

type stubAccountService struct {
	getFn  func(ctx context.Context, id string) (*domain.Account, error)
	listFn func(ctx context.Context) ([]*domain.Account, error)
}

func (s *stubAccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *stubAccountService) ListStudents(ctx context.Context) ([]*domain.Account, error) {
	return s.listFn(ctx)
}

func (s *stubAccountService) CreateAccount(context.Context, ports.CreateAccountInput) (*domain.Account, error) {
	return nil, nil
}

func (s *stubAccountService) UpdateStudent(context.Context, string, ports.UpdateStudentInput) (*domain.Account, error) {
	return nil, nil
}

func (s *stubAccountService) DeleteStudent(context.Context, string, string) error {
	return nil
}

func (s *stubAccountService) AssignedClassroom(context.Context, string) (*domain.Classroom, error) {
	return nil, nil
}

func (s *stubAccountService) Overview(context.Context) (*ports.Overview, error) {
	return nil, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Account, error) {
			if email != "p@school.test" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "signed-token", &domain.Account{Name: "P. Jones", Role: domain.RolePrincipal}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	body := strings.NewReader(`{"name":"P. Jones","email":"p@school.test","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %v", resp)
	}
	if resp["role"] != domain.RolePrincipal {
		t.Fatalf("expected role in response, got %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Account, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	body := strings.NewReader(`{"email":"p@school.test","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{}, &stubAccountService{})

	body := strings.NewReader(`{"email":"p@school.test"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_PasswordNotExposed(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password, role string) (*domain.Account, error) {
			return &domain.Account{
				ID: "acc_001", Name: name, Email: email,
				PasswordHash: "$2a$10$fakehash", Role: role,
			}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	body := strings.NewReader(`{"name":"S. Lee","email":"s@school.test","password":"secret1","role":"Student"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "fakehash") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	e := newTestEcho()
	accounts := &stubAccountService{
		getFn: func(ctx context.Context, id string) (*domain.Account, error) {
			if id != "acc_001" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Account{ID: id, Name: "P. Jones", Role: domain.RolePrincipal}, nil
		},
	}
	handler := NewAuthHandler(&stubAuthService{}, accounts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("account_id", "acc_001")
	c.Set("email", "p@school.test")
	c.Set("role", domain.RolePrincipal)

	if err := handler.CurrentUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_CurrentUser_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{}, &stubAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CurrentUser(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
