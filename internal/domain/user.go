package domain

import "time"

// User represents a registered account. Email is stored trimmed and
// lowercased and is unique across the store.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
