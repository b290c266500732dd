package service

import (
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/utils"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"go.uber.org/zap"
)

// AuthService exchanges credentials for bearer tokens.
type AuthService struct {
	userService *UserService
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthService(userService *UserService, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userService: userService,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

// Login authenticates a username/password pair and issues a signed token.
// Unknown user and bad password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	start := time.Now()

	user, err := s.userService.Authenticate(username, password)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed",
			zap.String("username", username),
		)
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Duration("duration", time.Since(start)),
	)

	return user, token, nil
}

// CurrentUser resolves the token subject to a directory entry.
func (s *AuthService) CurrentUser(username string) (*models.User, error) {
	return s.userService.GetByUsername(username)
}
