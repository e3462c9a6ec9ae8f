// Package http provides the HTTP handlers for sessions, contact records, and
// the admin views.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"leadvault/internal/middleware"
	"leadvault/internal/models"
	"leadvault/internal/service"
	"leadvault/internal/shared"
)

// AuthService defines the session operations required by the HTTP handlers.
type AuthService interface {
	// Register creates an account and establishes a session for it.
	Register(ctx context.Context, name, email, password string, role models.Role) (*service.Session, error)
	// Login verifies credentials and establishes a session.
	Login(ctx context.Context, email, password string, role models.Role) (*service.Session, error)
}

// AuthHandler handles HTTP requests for registration, login, and session
// restoration.
type AuthHandler struct {
	// AuthService performs the underlying session operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// Register handles POST /api/auth/register.
// It expects name, email, password, and a valid role. A taken email yields
// 409; success establishes a session immediately and returns it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Name == "" || req.Email == "" || req.Password == "" || !req.Role.Valid() {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	session, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if errors.Is(err, shared.ErrEmailTaken) {
		http.Error(w, "email already taken", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Login handles POST /api/auth/login.
// Unknown email, wrong password, and wrong role are indistinguishable: all
// yield 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Email == "" || req.Password == "" || !req.Role.Valid() {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	session, err := h.AuthService.Login(r.Context(), req.Email, req.Password, req.Role)
	if errors.Is(err, shared.ErrInvalidCredentials) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Me handles GET /api/auth/me. The authentication middleware has already
// restored and re-validated the session, so this just echoes the current
// user projection.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
