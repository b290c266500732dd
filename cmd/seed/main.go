package main

import (
	"log"
	"os"

	"github.com/Fuanyi-237/inventory-hyclass/internal/config"
	"github.com/Fuanyi-237/inventory-hyclass/internal/database"
	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/utils"
)

// Seeds the initial superadmin account. Safe to run repeatedly: an
// existing account is left untouched.
func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	var admin models.User
	result := database.DB.Where("username = ?", adminUsername).First(&admin)

	if result.Error == nil {
		log.Println("Superadmin already exists:", admin.Username)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		FullName:     "Superadmin",
		PasswordHash: passwordHash,
		Role:         models.RoleSuperadmin,
		IsActive:     true,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create superadmin:", err)
	}

	log.Println("Superadmin created successfully:", admin.Username)
}
