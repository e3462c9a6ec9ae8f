// Package models defines the core data structures for accounts and contact records.
package models

import "time"

// Role distinguishes regular users from administrators.
type Role string

const (
	// RoleUser is a regular lead-capturing user.
	RoleUser Role = "user"
	// RoleAdmin can view all submissions and the user list.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account represents a registered identity with credentials.
type Account struct {
	// ID is the unique identifier for the account, assigned at registration.
	ID string `json:"id"`
	// Name is the display name chosen at registration.
	Name string `json:"name"`
	// Email is unique across all accounts. Comparison is byte-exact:
	// no trimming and no case folding.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash []byte `json:"-"`
	// Role is fixed at registration.
	Role Role `json:"role"`
	// CreatedAt is set once at registration.
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the projection of the account that is safe to hand to
// clients and to embed in session tokens. The password hash never leaves
// the repository layer.
func (a *Account) Public() User {
	return User{ID: a.ID, Email: a.Email, Name: a.Name, Role: a.Role}
}

// User is the public projection of an Account held by a session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Contact is a lead submission owned by exactly one account.
type Contact struct {
	// ID is the unique identifier for the record, assigned at creation.
	ID string `json:"id"`
	// OwnerID references the account that created the record. Set once.
	OwnerID string `json:"userId"`
	// SubmittedAt is stamped at creation and preserved on edit.
	SubmittedAt time.Time `json:"submittedAt"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Address  string `json:"address"`
	Website  string `json:"website"`
	Notes    string `json:"notes"`
}

// ContactInput carries the editable payload fields of a contact record.
// The store treats these as opaque beyond ownership and timestamps.
type ContactInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Address  string `json:"address"`
	Website  string `json:"website"`
	Notes    string `json:"notes"`
}
