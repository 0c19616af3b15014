// Package client is the data-access layer consumed by dashboard frontends:
// it wraps the REST API, keeps the bearer token in a TokenStore, and attaches
// it to every authenticated request. Logout is purely local: the token is
// discarded, not revoked.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// APIError carries the server's error envelope for statuses without a
// dedicated sentinel.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

// Account mirrors the API's account shape. The password never appears.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Classroom mirrors the API's classroom shape.
type Classroom struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AssignedTeacher string `json:"assigned_teacher,omitempty"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Days            string `json:"days"`
}

// Overview is the dashboard's single aggregate fetch.
type Overview struct {
	Teachers   []Account   `json:"teachers"`
	Students   []Account   `json:"students"`
	Classrooms []Classroom `json:"classrooms"`
}

// Client wraps HTTP calls to the school administration API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the API at baseURL. The TokenStore decides where
// the bearer token lives between calls; use NewMemoryTokenStore when
// persistence is not needed.
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates and stores the returned token. On failure no token is
// stored.
func (c *Client) Login(ctx context.Context, name, email, password string) (role string, err error) {
	payload := map[string]string{"name": name, "email": email, "password": password}

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", payload, &resp, false); err != nil {
		return "", err
	}
	if err := c.tokens.Save(resp.Token); err != nil {
		return "", fmt.Errorf("save token: %w", err)
	}
	return resp.Role, nil
}

// Logout discards the locally stored token. The server keeps no revocation
// list, so an already-issued token stays valid until expiry.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// CurrentUser returns the authenticated account's profile.
func (c *Client) CurrentUser(ctx context.Context) (*Account, error) {
	var resp struct {
		Account *Account `json:"account"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/user", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

// GetOverview fetches teachers, students and classrooms in one call.
func (c *Client) GetOverview(ctx context.Context) (*Overview, error) {
	var resp Overview
	if err := c.do(ctx, http.MethodGet, "/api/v1/principal/overview", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListStudents returns all students. The API reports an empty set as
// ErrNotFound rather than an empty list.
func (c *Client) ListStudents(ctx context.Context) ([]Account, error) {
	var resp struct {
		Students []Account `json:"students"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/principal/students", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Students, nil
}

func (c *Client) CreateStudent(ctx context.Context, name, email, password string) (*Account, error) {
	return c.createAccount(ctx, "/api/v1/principal/students", name, email, password)
}

func (c *Client) CreateTeacher(ctx context.Context, name, email, password string) (*Account, error) {
	return c.createAccount(ctx, "/api/v1/principal/teachers", name, email, password)
}

func (c *Client) createAccount(ctx context.Context, path, name, email, password string) (*Account, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}
	var resp struct {
		Account *Account `json:"account"`
	}
	if err := c.do(ctx, http.MethodPost, path, payload, &resp, true); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

// UpdateStudent updates name/email and, when password is non-empty, the
// stored credential.
func (c *Client) UpdateStudent(ctx context.Context, id, name, email, password string) (*Account, error) {
	payload := map[string]string{"name": name, "email": email}
	if password != "" {
		payload["password"] = password
	}
	var resp struct {
		Account *Account `json:"account"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/principal/students/"+id, payload, &resp, true); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/principal/students/"+id, nil, nil, true)
}

func (c *Client) CreateClassroom(ctx context.Context, name, startTime, endTime, days string) (*Classroom, error) {
	payload := map[string]string{
		"name":       name,
		"start_time": startTime,
		"end_time":   endTime,
		"days":       days,
	}
	var resp struct {
		Classroom *Classroom `json:"classroom"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/principal/classrooms", payload, &resp, true); err != nil {
		return nil, err
	}
	return resp.Classroom, nil
}

func (c *Client) AssignTeacherToClassroom(ctx context.Context, teacherName, classroomName string) (*Classroom, error) {
	payload := map[string]string{
		"teacher_name":   teacherName,
		"classroom_name": classroomName,
	}
	var resp struct {
		Classroom *Classroom `json:"classroom"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/principal/classrooms/assign", payload, &resp, true); err != nil {
		return nil, err
	}
	return resp.Classroom, nil
}

// AssignedClassroom returns the classroom assigned to the authenticated
// teacher, resolved by the teacher's current name.
func (c *Client) AssignedClassroom(ctx context.Context) (*Classroom, error) {
	var resp struct {
		Classroom *Classroom `json:"classroom"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/teacher/classroom", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Classroom, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any, authed bool) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}
