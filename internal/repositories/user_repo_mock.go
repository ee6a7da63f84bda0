package repositories

import (
	"fmt"
	"sync"

	"pasar/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User // keyed by username
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user, rejecting duplicate usernames atomically under
// the repository lock.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("username %s: %w", user.Username, ErrDuplicate)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Username] = *user
	return nil
}

// GetByUsername returns a user by username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
	}
	return &user, nil
}

// ListByUserType returns all users with the given user-type tag.
func (r *MockUserRepository) ListByUserType(userType string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0)
	for _, user := range r.users {
		if user.UserType == userType {
			userList = append(userList, user)
		}
	}
	return userList, nil
}
