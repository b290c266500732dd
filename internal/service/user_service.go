package service

import (
	"errors"
	"regexp"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/repository"
	"github.com/Fuanyi-237/inventory-hyclass/internal/utils"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserService is the user directory: persisted users with unique
// username/email, a role and an active flag.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateInput carries everything needed to register a user. Role defaults
// to "user" when empty.
type CreateInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     models.Role
	IsActive *bool
}

// Create hashes the password and persists a new user. The username
// pre-check is best-effort: under concurrent identical signups the unique
// constraint is the authoritative guard, and the loser surfaces as
// ErrUsernameAlreadyExists rather than a raw storage error.
func (s *UserService) Create(in CreateInput) (*models.User, error) {
	if err := s.validateCreateInput(in); err != nil {
		logger.Log.Warn("User creation validation failed",
			zap.String("username", in.Username),
			zap.Error(err),
		)
		return nil, err
	}

	existing, err := s.userRepo.GetUserByUsername(in.Username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", in.Username),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     active,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.classifyDuplicate(in.Username)
		}
		logger.Log.Error("Failed to create user in database",
			zap.String("username", in.Username),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User created",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

// classifyDuplicate decides which unique constraint lost the race.
func (s *UserService) classifyDuplicate(username string) error {
	count, err := s.userRepo.CountByUsername(username)
	if err == nil && count > 0 {
		return ErrUsernameAlreadyExists
	}
	return ErrEmailAlreadyExists
}

// Authenticate looks a user up by username and verifies the password.
// Unknown username and password mismatch both return (nil, nil); an error
// means the lookup itself failed.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to get user by username",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	if !valid {
		return nil, nil
	}

	return user, nil
}

func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns a page of users.
func (s *UserService) List(offset, limit int) ([]*models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(offset, limit)
}

// UpdateRole reassigns a user's role.
func (s *UserService) UpdateRole(userID uint, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		logger.Log.Error("Failed to update user role",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	user.Role = role

	logger.Log.Info("User role updated",
		zap.Uint("user_id", userID),
		zap.String("role", string(role)),
	)

	return user, nil
}

// UpdatePassword replaces the stored hash after verifying the current
// password.
func (s *UserService) UpdatePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	valid, err := utils.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !valid {
		return ErrInvalidCredentials
	}

	if len(newPassword) < 8 {
		return invalidInput("password must be at least 8 characters")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, hash)
}

func (s *UserService) validateCreateInput(in CreateInput) error {
	if len(in.Username) < 3 {
		return invalidInput("username must be at least 3 characters")
	}
	if len(in.Username) > 50 {
		return invalidInput("username must be at most 50 characters")
	}

	if !emailRegex.MatchString(in.Email) {
		return invalidInput("invalid email format")
	}
	if len(in.Email) > 100 {
		return invalidInput("email too long")
	}

	if len(in.Password) < 8 {
		return invalidInput("password must be at least 8 characters")
	}
	if len(in.Password) > 128 {
		return invalidInput("password too long")
	}

	if in.Role != "" && !in.Role.Valid() {
		return ErrInvalidRole
	}

	return nil
}
