package user

import (
	"context"
	"fmt"
	"time"

	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Sessions live as long as the signed token.
const tokenDuration = 72 * time.Hour

// Register validates the payload, checks for duplicates and persists a new
// account with a signed session token.
func (s *DefaultUserService) Register(input RegisterInput) (*models.AuthResponse, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, utils.ValidationError("name, email and password are required")
	}

	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleVendor {
		return nil, utils.ValidationError("role must be 'customer' or 'vendor'")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, utils.ConflictError("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &models.AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Email: userObj.Email,
		Role:  userObj.Role,
	}, nil
}

// Authenticate verifies the credentials and rotates the session token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, utils.UnauthenticatedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, utils.UnauthenticatedError("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSet(userRec.ID, bson.M{"token_hash": tokenHash}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Drop the previous session's cached hash so it stops validating.
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to clear old token cache", zap.Error(err))
	}

	return &models.AuthResponse{
		ID:             userRec.ID,
		Token:          token,
		Name:           userRec.Name,
		Email:          userRec.Email,
		Role:           userRec.Role,
		ProfilePicture: userRec.ProfilePicture,
	}, nil
}
