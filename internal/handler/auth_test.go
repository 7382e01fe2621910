package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/todolist/todolist-go/internal/repository"
	"github.com/todolist/todolist-go/internal/service"
)

func newTestAuthHandler() *AuthHandler {
	svc := service.NewAuthService(repository.NewUserRepository(nil), "test-secret", time.Hour)
	return NewAuthHandler(svc)
}

func TestHandleSignup_InvalidBody(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	h.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSignup_EmptyEmail(t *testing.T) {
	h := newTestAuthHandler()

	body := `{"email":"","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Errorf("body = %q, want a detail message", rec.Body.String())
	}
}

func TestHandleLogin_EmptyPassword(t *testing.T) {
	h := newTestAuthHandler()

	body := `{"email":"test@example.com","password":""}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
