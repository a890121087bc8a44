package repository

import "github.com/devconnect/devconnect-api/internal/domain/entity"

// ProfileRepository defines the interface for profile aggregate storage.
// Sub-entity lists (experience, education, skills, social) are read and
// written as part of the whole aggregate; there are no per-entry queries.
type ProfileRepository interface {
	Create(p *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
	// List returns all profiles joined with the owning user's name and
	// avatar for display.
	List() ([]entity.Profile, error)
	Update(p *entity.Profile) error
	DeleteByUserID(userID string) error
}
