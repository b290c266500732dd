package testutil

import (
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/utils"
)

// CreateTestUser builds a user with a real hashed password, ready to be
// inserted by the caller.
func CreateTestUser(username, email, password string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Username:     username,
		Email:        email,
		FullName:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}, nil
}

// DefaultTestUser returns a default read-only user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

// DefaultSuperadminUser returns a default superadmin user
func DefaultSuperadminUser() (*models.User, error) {
	return CreateTestUser("superadmin", "super@example.com", "Super123456", models.RoleSuperadmin)
}

// CreateTestCategory builds a category fixture
func CreateTestCategory(name string, creatorID uint) *models.Category {
	return &models.Category{
		Name:        name,
		Description: "test category",
		CreatedBy:   &creatorID,
	}
}

// CreateTestItem builds an item fixture in the given state
func CreateTestItem(uniqueID, name string, state models.ItemState) *models.Item {
	return &models.Item{
		UniqueID: uniqueID,
		Name:     name,
		State:    state,
		Location: "storeroom",
	}
}

// CreateTestTransaction builds a transaction fixture at the given time
func CreateTestTransaction(itemID, userID uint, action models.TransactionAction, ts time.Time) *models.Transaction {
	return &models.Transaction{
		ItemID:    itemID,
		UserID:    userID,
		Action:    action,
		Timestamp: ts,
		Notes:     "test transaction",
	}
}
