package user

import (
	userRepo "eventra/database/repository/user"
	"eventra/models"
)

// RegisterInput is the payload for POST /api/auth/register.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// UserService handles accounts and authentication.
type UserService interface {
	Register(input RegisterInput) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	UpdateProfilePicture(userID, pictureURL string) (*models.User, error)

	// Admin / utility.
	GetAllUsers() ([]models.User, error)
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
