package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadvault/internal/models"
	"leadvault/internal/shared"
)

type fakeRestorer struct {
	user *models.User
	err  error
}

func (f *fakeRestorer) Restore(ctx context.Context, raw string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func TestAuthenticate(t *testing.T) {
	user := models.User{ID: "acc-1", Role: models.RoleUser}

	tests := []struct {
		name         string
		header       string
		restorer     *fakeRestorer
		expectedCode int
		expectUser   bool
	}{
		{
			name:         "missing header",
			header:       "",
			restorer:     &fakeRestorer{user: &user},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "not bearer",
			header:       "Basic abc",
			restorer:     &fakeRestorer{user: &user},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "stale token",
			header:       "Bearer x",
			restorer:     &fakeRestorer{err: shared.ErrInvalidToken},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "valid token",
			header:       "Bearer x",
			restorer:     &fakeRestorer{user: &user},
			expectedCode: http.StatusOK,
			expectUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser models.User
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, gotOK = UserFromContext(r.Context())
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/contacts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			Authenticate(tt.restorer)(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectUser {
				if !gotOK || gotUser.ID != user.ID {
					t.Errorf("expected user in context, got %+v (ok=%v)", gotUser, gotOK)
				}
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name         string
		user         *models.User
		expectedCode int
	}{
		{"no session", nil, http.StatusForbidden},
		{"regular user", &models.User{ID: "acc-1", Role: models.RoleUser}, http.StatusForbidden},
		{"admin", &models.User{ID: "acc-2", Role: models.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/admin/stats", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), *tt.user))
			}

			RequireAdmin(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}
