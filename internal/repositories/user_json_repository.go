package repositories

import (
	"fmt"

	"tweeter/internal/models"
	"tweeter/pkg/jsonstore"
)

// JSONUserRepository keeps users in a JSON collection file.
type JSONUserRepository struct {
	users *jsonstore.Collection[models.User]
}

// NewJSONUserRepository creates a repository over the users file at path.
func NewJSONUserRepository(path string) *JSONUserRepository {
	return &JSONUserRepository{
		users: jsonstore.Open[models.User](path),
	}
}

// Create appends a user to the collection.
func (r *JSONUserRepository) Create(user *models.User) error {
	if _, err := r.users.Append(*user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetAll returns every stored user in insertion order.
func (r *JSONUserRepository) GetAll() ([]models.User, error) {
	users, err := r.users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}
