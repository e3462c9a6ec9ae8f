package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"leadvault/internal/export"
	"leadvault/internal/models"
	"leadvault/internal/stats"
)

// AdminContactLister supplies the tenant-wide contact snapshot.
type AdminContactLister interface {
	ListAll(ctx context.Context) ([]models.Contact, error)
}

// AccountLister supplies account listings for the admin views.
type AccountLister interface {
	ListByRole(ctx context.Context, role models.Role) ([]models.Account, error)
}

// AdminHandler handles the tenant-wide admin endpoints. All aggregation is
// computed by the pure stats package over a snapshot of the stores.
type AdminHandler struct {
	Contacts AdminContactLister
	Accounts AccountLister

	// Now is the clock used for month-to-date stats; nil means time.Now.
	Now func() time.Time
}

func (h *AdminHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// filtered loads the full snapshot and applies the owner and search query
// parameters. Filtering and searching commute; the composed order here
// matches search(filterByOwner(listAll, owner), term).
func (h *AdminHandler) filtered(r *http.Request) (filtered, all []models.Contact, err error) {
	all, err = h.Contacts.ListAll(r.Context())
	if err != nil {
		return nil, nil, err
	}

	owner := r.URL.Query().Get("owner")
	if owner == "" {
		owner = stats.AllOwners
	}
	term := r.URL.Query().Get("q")

	filtered = stats.Search(stats.FilterByOwner(all, owner), term)
	return filtered, all, nil
}

// ListContacts handles GET /api/admin/contacts with optional owner and q
// query parameters. The response carries the filtered subset plus the
// unfiltered total for the "showing X of Y" footer.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	filtered, all, err := h.filtered(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if filtered == nil {
		filtered = []models.Contact{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"submissions": filtered,
		"total":       len(all),
	})
}

// ExportContacts handles GET /api/admin/contacts/export: the filtered subset
// as CSV including the owner column.
func (h *AdminHandler) ExportContacts(w http.ResponseWriter, r *http.Request) {
	filtered, _, err := h.filtered(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "admin_all_contacts_"+h.now().Format("2006-01-02")+".csv"))
	_ = export.WriteCSV(w, filtered, true)
}

// userEntry is one row of the admin user list.
type userEntry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	CreatedAt   time.Time   `json:"createdAt"`
	Submissions int         `json:"submissions"`
}

// ListUsers handles GET /api/admin/users: all user-role accounts with their
// per-owner submission counts.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Accounts.ListByRole(r.Context(), models.RoleUser)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	records, err := h.Contacts.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entries := make([]userEntry, 0, len(accounts))
	for _, a := range accounts {
		entries = append(entries, userEntry{
			ID:          a.ID,
			Name:        a.Name,
			Email:       a.Email,
			Role:        a.Role,
			CreatedAt:   a.CreatedAt,
			Submissions: stats.PerOwnerCount(records, a.ID),
		})
	}

	writeJSON(w, http.StatusOK, entries)
}

// Stats handles GET /api/admin/stats: the tenant-wide dashboard summary.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	records, err := h.Contacts.ListAll(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	accounts, err := h.Accounts.ListByRole(r.Context(), models.RoleUser)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats.Overview(records, accounts, h.now()))
}
