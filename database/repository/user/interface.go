package userRepo

import (
	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when no
	// user matches.
	GetByEmail(email string) (*models.User, error)
	// GetByIDs retrieves the users matching the given IDs.
	GetByIDs(ids []string) ([]models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// UpdateSet applies a $set document to an existing user record.
	UpdateSet(id string, update bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
