// Package repository provides persistence implementations for the credential
// and contact record stores.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"leadvault/internal/models"
	"leadvault/internal/shared"
)

// PostgresContactRepository implements the contact record store against a
// PostgreSQL database. Listings come back most-recent-first: the seq column
// increases with every insert, reproducing insert-at-head ordering even when
// two records share a submission timestamp.
type PostgresContactRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresContactRepository creates a new PostgresContactRepository using
// the provided *sql.DB.
func NewPostgresContactRepository(db *sql.DB) *PostgresContactRepository {
	return &PostgresContactRepository{DB: db}
}

const contactColumns = `id, owner_id, name, email, phone, company, position, address, website, notes, submitted_at`

func scanContact(row interface{ Scan(...any) error }) (*models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Company,
		&c.Position, &c.Address, &c.Website, &c.Notes, &c.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Insert stores a new contact record. The caller supplies id, owner, and
// submission timestamp.
func (s *PostgresContactRepository) Insert(ctx context.Context, contact *models.Contact) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO contacts (id, owner_id, name, email, phone, company, position, address, website, notes, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, contact.ID, contact.OwnerID, contact.Name, contact.Email, contact.Phone, contact.Company,
		contact.Position, contact.Address, contact.Website, contact.Notes, contact.SubmittedAt)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

// Update replaces the payload fields of the record with the given id,
// preserving id, owner, position, and the original submitted_at. Returns
// shared.ErrContactNotFound if no record with that id exists.
func (s *PostgresContactRepository) Update(ctx context.Context, id string, in models.ContactInput) (*models.Contact, error) {
	row := s.DB.QueryRowContext(ctx, `
		UPDATE contacts SET
			name = $2,
			email = $3,
			phone = $4,
			company = $5,
			position = $6,
			address = $7,
			website = $8,
			notes = $9
		WHERE id = $1
		RETURNING `+contactColumns+`
	`, id, in.Name, in.Email, in.Phone, in.Company, in.Position, in.Address, in.Website, in.Notes)

	contact, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return contact, nil
}

// GetByID fetches a single contact record by id. Returns
// shared.ErrContactNotFound when absent.
func (s *PostgresContactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT `+contactColumns+` FROM contacts WHERE id = $1
	`, id)

	contact, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return contact, nil
}

// ListAll fetches every contact record, most-recent-first.
func (s *PostgresContactRepository) ListAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+contactColumns+` FROM contacts ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

// ListByOwner fetches all contact records owned by the given account,
// most-recent-first.
func (s *PostgresContactRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Contact, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+contactColumns+` FROM contacts WHERE owner_id = $1 ORDER BY seq DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

func collectContacts(rows *sql.Rows) ([]models.Contact, error) {
	var contacts []models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		contacts = append(contacts, *contact)
	}
	return contacts, rows.Err()
}
