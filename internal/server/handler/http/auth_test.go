package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadvault/internal/middleware"
	"leadvault/internal/models"
	"leadvault/internal/service"
	"leadvault/internal/shared"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	session     *service.Session
	registerErr error
	loginErr    error
}

func (f *fakeAuthService) Register(ctx context.Context, name, email, password string, role models.Role) (*service.Session, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.session, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string, role models.Role) (*service.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func demoSession() *service.Session {
	return &service.Session{
		User:  models.User{ID: "acc-1", Email: "user@demo.com", Name: "Demo User", Role: models.RoleUser},
		Token: "signed-token",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "missing name",
			body:           `{"email":"a@b.c","password":"pw","role":"user"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "unknown role",
			body:           `{"name":"A","email":"a@b.c","password":"pw","role":"root"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "email taken",
			body:           `{"name":"A","email":"a@b.c","password":"pw","role":"user"}`,
			service:        &fakeAuthService{registerErr: shared.ErrEmailTaken},
			expectedCode:   http.StatusConflict,
			expectedSubstr: "email already taken",
		},
		{
			name:           "success",
			body:           `{"name":"Demo User","email":"user@demo.com","password":"demo123","role":"user"}`,
			service:        &fakeAuthService{session: demoSession()},
			expectedCode:   http.StatusOK,
			expectedSubstr: "signed-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Register(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `{`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "wrong credentials",
			body:         `{"email":"user@demo.com","password":"nope","role":"user"}`,
			service:      &fakeAuthService{loginErr: shared.ErrInvalidCredentials},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "success",
			body:         `{"email":"user@demo.com","password":"demo123","role":"user"}`,
			service:      &fakeAuthService{session: demoSession()},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Login(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK {
				var session service.Session
				if err := json.NewDecoder(rec.Body).Decode(&session); err != nil {
					t.Fatalf("failed to decode session: %v", err)
				}
				if session.User.ID != "acc-1" {
					t.Errorf("session user id = %q; want acc-1", session.User.ID)
				}
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := &AuthHandler{}
	user := models.User{ID: "acc-1", Email: "user@demo.com", Name: "Demo User", Role: models.RoleUser}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), user))
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got models.User
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode user: %v", err)
	}
	if got != user {
		t.Errorf("Me = %+v; want %+v", got, user)
	}
}
