package domain

import "time"

// Blog is a post authored by exactly one user. AuthorID never changes after
// creation; every mutating store operation is filtered by it.
type Blog struct {
	ID          string
	AuthorID    string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
