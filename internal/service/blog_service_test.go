package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/internal/domain"
	"miniblog/internal/repository"
)

type fakeBlogRepo struct {
	blogs map[string]*domain.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[string]*domain.Blog{}}
}

func (r *fakeBlogRepo) Init(ctx context.Context) error { return nil }

func (r *fakeBlogRepo) Create(ctx context.Context, blog *domain.Blog) error {
	copied := *blog
	r.blogs[blog.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) UpdateOwned(ctx context.Context, authorID, blogID, title, description string) (*domain.Blog, error) {
	blog, ok := r.blogs[blogID]
	if !ok || blog.AuthorID != authorID {
		return nil, repository.ErrNotFound
	}
	blog.Title = title
	blog.Description = description
	copied := *blog
	return &copied, nil
}

func (r *fakeBlogRepo) DeleteOwned(ctx context.Context, authorID, blogID string) error {
	blog, ok := r.blogs[blogID]
	if !ok || blog.AuthorID != authorID {
		return repository.ErrNotFound
	}
	delete(r.blogs, blogID)
	return nil
}

func (r *fakeBlogRepo) ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	out := []domain.Blog{}
	for _, blog := range r.blogs {
		if blog.AuthorID == authorID {
			out = append(out, *blog)
		}
	}
	return out, nil
}

func TestBlogCreate_AuthorIsAlwaysTheCaller(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	blog, err := svc.Create(context.Background(), "user-1", "T", "D")
	require.NoError(t, err)

	assert.Equal(t, "user-1", blog.AuthorID)
	assert.NotEmpty(t, blog.ID)
	assert.Equal(t, "T", blog.Title)
	assert.Equal(t, "D", blog.Description)
}

func TestBlogUpdate_ForeignBlogLooksMissing(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	blog, err := svc.Create(context.Background(), "owner", "T", "D")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "intruder", blog.ID, "X", "Y")
	assert.ErrorIs(t, err, ErrBlogNotFound)

	updated, err := svc.Update(context.Background(), "owner", blog.ID, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, "owner", updated.AuthorID)
}

func TestBlogDelete_RepeatedDeleteKeepsFailing(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	blog, err := svc.Create(context.Background(), "owner", "T", "D")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "owner", blog.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), "owner", blog.ID), ErrBlogNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "owner", blog.ID), ErrBlogNotFound)
}

func TestBlogList_OnlyOwnBlogs(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	_, err := svc.Create(context.Background(), "u1", "mine", "d")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "u2", "theirs", "d")
	require.NoError(t, err)

	blogs, err := svc.ListByAuthor(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "mine", blogs[0].Title)
}
