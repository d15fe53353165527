package repository

import (
	"context"

	"miniblog/internal/domain"
)

// BlogRepository defines persistence operations for Blog entities. Every
// operation that names a blog id also takes the requesting author id and
// matches both, so a miss never reveals whether the record exists.
type BlogRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, blog *domain.Blog) error
	UpdateOwned(ctx context.Context, authorID, blogID, title, description string) (*domain.Blog, error)
	DeleteOwned(ctx context.Context, authorID, blogID string) error
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
}
