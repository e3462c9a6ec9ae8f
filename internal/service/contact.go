package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leadvault/internal/models"
	"leadvault/internal/shared"
)

// ContactRepository defines the persistence operations needed by the
// ContactService.
type ContactRepository interface {
	// Insert stores a new contact record.
	Insert(ctx context.Context, contact *models.Contact) error
	// Update replaces the payload fields of the record with the given id,
	// preserving id, owner, and the original submission timestamp. Returns
	// shared.ErrContactNotFound for a missing id.
	Update(ctx context.Context, id string, in models.ContactInput) (*models.Contact, error)
	// GetByID fetches a single record by id.
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	// ListAll returns every record, most-recent-first.
	ListAll(ctx context.Context) ([]models.Contact, error)
	// ListByOwner returns the records owned by the given account,
	// most-recent-first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Contact, error)
}

// AccountFinder looks up accounts by id for owner validation.
type AccountFinder interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

// ContactService implements contact record business logic. There is no
// delete operation; records live forever and edits replace payload fields
// in place.
type ContactService struct {
	contacts ContactRepository
	accounts AccountFinder
}

// NewContactService constructs a ContactService with the provided
// repositories.
func NewContactService(contacts ContactRepository, accounts AccountFinder) *ContactService {
	return &ContactService{contacts: contacts, accounts: accounts}
}

// Create stores a new contact record for the given owner. The owner must
// reference an existing account at creation time; the record gets a fresh id
// and a submission timestamp of now.
func (s *ContactService) Create(ctx context.Context, ownerID string, in models.ContactInput) (*models.Contact, error) {
	if _, err := s.accounts.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, shared.ErrAccountNotFound) {
			return nil, shared.ErrAccountNotFound
		}
		return nil, fmt.Errorf("validate owner: %w", err)
	}

	contact := &models.Contact{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		SubmittedAt: time.Now(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		Position:    in.Position,
		Address:     in.Address,
		Website:     in.Website,
		Notes:       in.Notes,
	}

	if err := s.contacts.Insert(ctx, contact); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return contact, nil
}

// Update replaces the payload fields of an existing record, preserving its
// id, owner, and original submission timestamp. A missing id signals
// shared.ErrContactNotFound.
func (s *ContactService) Update(ctx context.Context, id string, in models.ContactInput) (*models.Contact, error) {
	return s.contacts.Update(ctx, id, in)
}

// GetByID fetches a single record by id.
func (s *ContactService) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

// ListAll returns every contact record, most-recent-first.
func (s *ContactService) ListAll(ctx context.Context) ([]models.Contact, error) {
	return s.contacts.ListAll(ctx)
}

// ListByOwner returns the records owned by the given account,
// most-recent-first.
func (s *ContactService) ListByOwner(ctx context.Context, ownerID string) ([]models.Contact, error) {
	return s.contacts.ListByOwner(ctx, ownerID)
}
