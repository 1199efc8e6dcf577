package user

import (
	"eventra/models"
	"eventra/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID fetches an account by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, utils.NotFoundError("user not found")
	}
	return usr, nil
}

// UpdateProfilePicture overwrites the user's profile picture URL.
func (s *DefaultUserService) UpdateProfilePicture(userID, pictureURL string) (*models.User, error) {
	if pictureURL == "" {
		return nil, utils.ValidationError("profile picture URL is required")
	}
	usr, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSet(userID, bson.M{"profile_picture": pictureURL}); err != nil {
		return nil, err
	}
	usr.ProfilePicture = pictureURL
	return usr, nil
}

// GetAllUsers lists every account. Admin only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// DeleteUser removes an account. Admin only.
func (s *DefaultUserService) DeleteUser(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if usr == nil {
		return utils.NotFoundError("user not found")
	}
	return s.Repo.Delete(userID)
}
