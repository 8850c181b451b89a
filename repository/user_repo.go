package repository

import "biomedico/models"

// UserRepository defines the interface for user account operations.
type UserRepository interface {
	// CreateUser inserts the user and sets user.ID. The password must
	// already be hashed by the caller.
	CreateUser(user *models.Usuario) error
	// GetUserByIdentifier matches username OR email against the given
	// identifier. Returns (nil, nil) when no user matches.
	GetUserByIdentifier(identifier string) (*models.Usuario, error)
	// FindExisting looks up a user whose username equals identity or
	// whose email equals email. Used by registration and bulk import to
	// detect duplicates. Returns (nil, nil) when no user matches.
	FindExisting(identity, email string) (*models.Usuario, error)
	GetAllUsers() ([]*models.Usuario, error)
}
