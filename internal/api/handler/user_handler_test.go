package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

type stubUserService struct {
	users map[string]*domain.User
}

func newStubUserService() *stubUserService {
	return &stubUserService{users: make(map[string]*domain.User)}
}

func (s *stubUserService) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserService) Create(_ context.Context, email, _, role string) (*domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}
	u := &domain.User{ID: "u-" + email, Email: email, Role: role, PasswordHash: "hashed"}
	s.users[u.ID] = u
	return u, nil
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func TestUserHandler_List_NeverLeaksPasswordHash(t *testing.T) {
	e := newTestEcho()
	svc := newStubUserService()
	_, _ = svc.Create(context.Background(), "alice@example.com", "pass123", domain.RoleAdmin)
	h := NewUserHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hashed") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_Create(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(newStubUserService())

	body := `{"email":"new@example.com","password":"pass123","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_UnknownID(t *testing.T) {
	e := newTestEcho()
	h := NewUserHandler(newStubUserService())

	req := httptest.NewRequest(http.MethodDelete, "/api/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := h.Delete(c)
	if err == nil {
		t.Fatalf("expected error for unknown id")
	}
	// The central error handler maps ErrUserNotFound to 404.
}
