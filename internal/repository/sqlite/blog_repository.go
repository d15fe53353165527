package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"miniblog/internal/domain"
	"miniblog/internal/repository"
)

const createBlogsTable = `
CREATE TABLE IF NOT EXISTS blogs (
	id TEXT PRIMARY KEY,
	author_id TEXT NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const createBlogsAuthorIndex = `
CREATE INDEX IF NOT EXISTS idx_blogs_author ON blogs(author_id);
`

type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) repository.BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBlogsTable); err != nil {
		return fmt.Errorf("create blogs table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createBlogsAuthorIndex); err != nil {
		return fmt.Errorf("create blogs author index: %w", err)
	}
	return nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO blogs (id, author_id, title, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		blog.ID,
		blog.AuthorID,
		blog.Title,
		blog.Description,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// UpdateOwned mutates title and description of the blog matching both id and
// author. A miss on either yields ErrNotFound; the caller cannot tell which.
func (r *BlogRepository) UpdateOwned(ctx context.Context, authorID, blogID, title, description string) (*domain.Blog, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE blogs
SET title = ?, description = ?, updated_at = ?
WHERE id = ? AND author_id = ?`,
		title,
		description,
		time.Now().UTC(),
		blogID,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update blog rows affected: %w", err)
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.getOwned(ctx, authorID, blogID)
}

func (r *BlogRepository) DeleteOwned(ctx context.Context, authorID, blogID string) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM blogs
WHERE id = ? AND author_id = ?`,
		blogID,
		authorID,
	)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blog rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, author_id, title, description, created_at, updated_at
FROM blogs
WHERE author_id = ?
ORDER BY created_at DESC, id`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []domain.Blog{}
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.AuthorID,
			&blog.Title,
			&blog.Description,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) getOwned(ctx context.Context, authorID, blogID string) (*domain.Blog, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, author_id, title, description, created_at, updated_at
FROM blogs
WHERE id = ? AND author_id = ?`,
		blogID,
		authorID,
	)

	var blog domain.Blog
	if err := row.Scan(
		&blog.ID,
		&blog.AuthorID,
		&blog.Title,
		&blog.Description,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan blog: %w", err)
	}
	return &blog, nil
}
