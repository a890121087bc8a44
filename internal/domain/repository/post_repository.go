package repository

import "github.com/devconnect/devconnect-api/internal/domain/entity"

// PostRepository defines the interface for post aggregate storage.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	// List returns all posts, newest first.
	List() ([]entity.Post, error)
	// Update persists the likes and comments lists of an existing post.
	Update(p *entity.Post) error
	Delete(id string) error
}
