package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"miniblog/internal/domain"
	"miniblog/internal/repository"
)

// ErrBlogNotFound is returned when no blog matches both the id and the
// requesting author. A missing record and a foreign record are deliberately
// indistinguishable.
var ErrBlogNotFound = errors.New("blog not found")

// BlogService coordinates ownership-scoped blog operations.
type BlogService interface {
	Create(ctx context.Context, authorID, title, description string) (*domain.Blog, error)
	Update(ctx context.Context, authorID, blogID, title, description string) (*domain.Blog, error)
	Delete(ctx context.Context, authorID, blogID string) error
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
}

type blogService struct {
	blogs repository.BlogRepository
}

func NewBlogService(blogs repository.BlogRepository) BlogService {
	return &blogService{blogs: blogs}
}

// Create persists a blog authored by authorID. The author is always the
// authenticated identity; nothing in the input can override it.
func (s *blogService) Create(ctx context.Context, authorID, title, description string) (*domain.Blog, error) {
	blog := &domain.Blog{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		Title:       title,
		Description: description,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) Update(ctx context.Context, authorID, blogID, title, description string) (*domain.Blog, error) {
	blog, err := s.blogs.UpdateOwned(ctx, authorID, blogID, title, description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, authorID, blogID string) error {
	if err := s.blogs.DeleteOwned(ctx, authorID, blogID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return err
	}
	return nil
}

func (s *blogService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	return s.blogs.ListByAuthor(ctx, authorID)
}
