package repositories

import (
	"errors"

	"pasar/internal/models"
)

// ErrNotFound is returned by lookups when no matching record exists.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned by Create when a unique constraint is violated.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	ListByUserType(userType string) ([]models.User, error)
}
