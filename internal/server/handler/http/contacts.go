package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"leadvault/internal/export"
	"leadvault/internal/middleware"
	"leadvault/internal/models"
	"leadvault/internal/shared"
)

// ContactService defines the contact record operations required by the HTTP
// handlers.
type ContactService interface {
	Create(ctx context.Context, ownerID string, in models.ContactInput) (*models.Contact, error)
	Update(ctx context.Context, id string, in models.ContactInput) (*models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Contact, error)
}

// ContactHandler handles the owner-scoped contact record endpoints.
type ContactHandler struct {
	ContactService ContactService
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validateInput applies the contact form's required-field rules: name,
// email, phone, company, and position must be present, and the email must
// have a minimal address shape.
func validateInput(in models.ContactInput) error {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"company", in.Company},
		{"position", in.Position},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", shared.ErrValidation, f.field)
		}
	}
	if !emailRe.MatchString(in.Email) {
		return fmt.Errorf("%w: invalid email format", shared.ErrValidation)
	}
	return nil
}

// Create handles POST /api/contacts. The record is owned by the session
// user; id and submission timestamp are assigned server-side.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var in models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := validateInput(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contact, err := h.ContactService.Create(r.Context(), user.ID, in)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

// Update handles PUT /api/contacts/{id}. It replaces the payload fields,
// preserving id, owner, and the original submission timestamp. A record
// owned by someone else looks the same as a missing one: 404, so record ids
// cannot be probed across owners.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var in models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := validateInput(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.canAccess(r.Context(), w, user, id) {
		return
	}

	contact, err := h.ContactService.Update(r.Context(), id, in)
	if errors.Is(err, shared.ErrContactNotFound) {
		http.Error(w, "contact not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// Get handles GET /api/contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	contact, err := h.ContactService.GetByID(r.Context(), id)
	if errors.Is(err, shared.ErrContactNotFound) {
		http.Error(w, "contact not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if contact.OwnerID != user.ID && user.Role != models.RoleAdmin {
		http.Error(w, "contact not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

// List handles GET /api/contacts: the session user's own submissions,
// most-recent-first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contacts, err := h.ContactService.ListByOwner(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	writeJSON(w, http.StatusOK, contacts)
}

// Export handles GET /api/contacts/export: the session user's submissions as
// a CSV attachment.
func (h *ContactHandler) Export(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	contacts, err := h.ContactService.ListByOwner(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "contacts_"+time.Now().Format("2006-01-02")+".csv"))
	_ = export.WriteCSV(w, contacts, false)
}

// canAccess checks that the record exists and belongs to the session user
// (admins may touch any record). It writes the response on failure and
// returns false.
func (h *ContactHandler) canAccess(ctx context.Context, w http.ResponseWriter, user models.User, id string) bool {
	existing, err := h.ContactService.GetByID(ctx, id)
	if errors.Is(err, shared.ErrContactNotFound) {
		http.Error(w, "contact not found", http.StatusNotFound)
		return false
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}
	if existing.OwnerID != user.ID && user.Role != models.RoleAdmin {
		http.Error(w, "contact not found", http.StatusNotFound)
		return false
	}
	return true
}
