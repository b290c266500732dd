package utils

import (
	"testing"
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants
const (
	testSecret          = "test-secret-key-for-jwt-testing"
	testWrongSecret     = "wrong-secret-key-for-jwt-testing"
	testTokenDuration   = 1 * time.Hour
	testExpiredDuration = -1 * time.Hour
)

// Helper function to create test user
func createTestUser(role models.Role) *models.User {
	return &models.User{
		ID:       1,
		Username: "testuser",
		Email:    "test@example.com",
		Role:     role,
	}
}

func TestGenerateToken_Success(t *testing.T) {
	user := createTestUser(models.RoleUser)

	token, err := GenerateToken(user, testSecret, testTokenDuration)

	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Contains(t, token, ".", "JWT token should contain dots")
}

func TestGenerateToken_AllRoles(t *testing.T) {
	roles := []models.Role{models.RoleUser, models.RoleAdmin, models.RoleSuperadmin}

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			user := createTestUser(role)

			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should work for all roles")

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role, "Token should contain correct role")
		})
	}
}

func TestGenerateToken_DefaultTTL(t *testing.T) {
	// A non-positive ttl falls back to the 15 minute default
	user := createTestUser(models.RoleUser)

	token, err := GenerateToken(user, testSecret, 0)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err, "Token with default ttl should validate")

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 14*time.Minute)
	assert.LessOrEqual(t, remaining, DefaultTokenTTL)
}

func TestValidateToken_Success(t *testing.T) {
	user := createTestUser(models.RoleAdmin)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	require.NoError(t, err, "ValidateToken should not return error for valid token")
	assert.NotNil(t, claims, "Claims should not be nil")
	assert.Equal(t, user.Username, claims.Subject, "Subject should be the username")
	assert.Equal(t, user.Username, claims.Username(), "Username helper should match subject")
	assert.Equal(t, user.Role, claims.Role, "Role should match")
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()), "Token should not be expired")
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testExpiredDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	assert.ErrorIs(t, err, ErrExpiredToken, "Expired token should fail with ErrExpiredToken")
	assert.Nil(t, claims, "Claims should be nil for expired token")
}

func TestValidateToken_InvalidToken(t *testing.T) {
	invalidTokens := []string{
		"",                                     // Empty
		"invalid.token.here",                   // Invalid format
		"not-a-jwt-token",                      // Plain text
		"a.b",                                  // Incomplete JWT
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", // Only header
	}

	for _, invalidToken := range invalidTokens {
		t.Run(invalidToken, func(t *testing.T) {
			claims, err := ValidateToken(invalidToken, testSecret)

			assert.ErrorIs(t, err, ErrInvalidToken, "Malformed token should fail with ErrInvalidToken")
			assert.Nil(t, claims, "Claims should be nil for invalid token")
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testWrongSecret)

	assert.ErrorIs(t, err, ErrInvalidToken, "Forged signature should fail with ErrInvalidToken")
	assert.Nil(t, claims, "Claims should be nil when secret is wrong")
}

func TestValidateToken_TamperedToken(t *testing.T) {
	user := createTestUser(models.RoleUser)
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	// Tamper with the token by modifying the signature
	tamperedToken := token[:len(token)-5] + "XXXXX"

	claims, err := ValidateToken(tamperedToken, testSecret)

	assert.ErrorIs(t, err, ErrInvalidToken, "Tampered token should fail with ErrInvalidToken")
	assert.Nil(t, claims, "Claims should be nil for tampered token")
}

func TestValidateToken_MissingSubject(t *testing.T) {
	// A token without a subject claim carries no identity and is rejected
	user := &models.User{Username: "", Role: models.RoleUser}
	token, err := GenerateToken(user, testSecret, testTokenDuration)
	require.NoError(t, err, "Setup: GenerateToken should not fail")

	claims, err := ValidateToken(token, testSecret)

	assert.ErrorIs(t, err, ErrInvalidToken, "Token without subject should fail with ErrInvalidToken")
	assert.Nil(t, claims)
}

func TestToken_RoundTrip(t *testing.T) {
	users := []*models.User{
		createTestUser(models.RoleUser),
		createTestUser(models.RoleSuperadmin),
		{
			ID:       42,
			Username: "unicode_user_ışık",
			Email:    "unicode@example.com",
			Role:     models.RoleAdmin,
		},
	}

	for _, user := range users {
		t.Run(user.Username, func(t *testing.T) {
			token, err := GenerateToken(user, testSecret, testTokenDuration)
			require.NoError(t, err, "GenerateToken should succeed")

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err, "ValidateToken should succeed")

			assert.Equal(t, user.Username, claims.Subject, "Subject should match")
			assert.Equal(t, user.Role, claims.Role, "Role should match")
		})
	}
}
