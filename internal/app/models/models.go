package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is the authentication root. A user profile references it.
type Account struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// User is the person behind an account
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AccountID uuid.UUID `json:"accountId" db:"account_id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
}

// FullName joins first and last name
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
