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

// PostgresAccountRepository implements the credential store against a
// PostgreSQL database.
type PostgresAccountRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository with
// the given database connection.
func NewPostgresAccountRepository(db *sql.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{DB: db}
}

// CreateAccount inserts a new account row. The caller supplies a fully
// populated account including id, hash, and creation timestamp.
func (s *PostgresAccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO accounts (id, name, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		account.ID, account.Name, account.Email, account.PasswordHash, string(account.Role), account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("CreateAccount: %w", err)
	}
	return nil
}

// EmailExists checks whether an account with the specified email exists.
// Email equality is byte-exact; the column comparison does no folding.
func (s *PostgresAccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`,
		email,
	).Scan(&exists)
	return exists, err
}

// FindByEmail fetches the account with the given email, including the
// password hash for credential verification. Returns shared.ErrAccountNotFound
// when no such account exists.
func (s *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, created_at FROM accounts WHERE email = $1
	`, email).Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("FindByEmail: %w", err)
	}
	return &account, nil
}

// FindByID fetches the account with the given id. Returns
// shared.ErrAccountNotFound when no such account exists.
func (s *PostgresAccountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, created_at FROM accounts WHERE id = $1
	`, id).Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return &account, nil
}

// ListByRole returns all accounts with the given role ordered by creation
// time, oldest first.
func (s *PostgresAccountRepository) ListByRole(ctx context.Context, role models.Role) ([]models.Account, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, email, password_hash, role, created_at FROM accounts WHERE role = $1 ORDER BY created_at
	`, string(role))
	if err != nil {
		return nil, fmt.Errorf("ListByRole: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Role, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}
