package main

import (
	"log"
	"os"

	"github.com/Fuanyi-237/inventory-hyclass/internal/config"
	"github.com/Fuanyi-237/inventory-hyclass/internal/database"
	"github.com/Fuanyi-237/inventory-hyclass/internal/handler"
	"github.com/Fuanyi-237/inventory-hyclass/internal/middleware"
	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/notifier"
	"github.com/Fuanyi-237/inventory-hyclass/internal/repository"
	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Notifier is optional: without Redis, transaction events are dropped
	var publisher notifier.Publisher = notifier.NoopPublisher{}
	var redisPublisher *notifier.RedisPublisher
	if cfg.RedisURL != "" {
		var err error
		redisPublisher, err = notifier.NewRedisPublisher(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to initialize Redis publisher: %v", err)
		}
		defer redisPublisher.Close()
		publisher = redisPublisher
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	itemRepo := repository.NewItemRepository(database.DB)
	transactionRepo := repository.NewTransactionRepository(database.DB)

	// Initialize services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, cfg.JWTSecret, cfg.TokenTTL)
	categoryService := service.NewCategoryService(categoryRepo)
	itemService := service.NewItemService(itemRepo)
	transactionService := service.NewTransactionService(transactionRepo, publisher)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService, userService)
	itemHandler := handler.NewItemHandler(itemService, userService)
	transactionHandler := handler.NewTransactionHandler(transactionService, userService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	// Setup Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
	}))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	if redisPublisher != nil {
		limiter := middleware.NewRateLimiter(redisPublisher.Client(), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		})
		auth.POST("/token", limiter.Middleware(), authHandler.Token)
	} else {
		auth.POST("/token", authHandler.Token)
	}
	api.POST("/users/", userHandler.Create)

	// Protected routes (require JWT)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/categories/", categoryHandler.List)
		protected.GET("/categories/:id", categoryHandler.Get)
		protected.GET("/items/", itemHandler.List)
		protected.GET("/transactions/", transactionHandler.List)
		protected.GET("/transactions/export", transactionHandler.Export)
		protected.POST("/uploads/upload", uploadHandler.Upload)

		// Inventory mutation: admin and superadmin only
		mutate := protected.Group("")
		mutate.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin))
		{
			mutate.POST("/categories/", categoryHandler.Create)
			mutate.PUT("/categories/:id", categoryHandler.Update)
			mutate.DELETE("/categories/:id", categoryHandler.Delete)
			mutate.POST("/items/", itemHandler.Create)
			mutate.DELETE("/items/:id", itemHandler.Delete)
			mutate.POST("/transactions/", transactionHandler.Create)
		}

		// User administration: superadmin only
		admin := protected.Group("/users")
		admin.Use(middleware.RequireRoles(models.RoleSuperadmin))
		{
			admin.GET("/", userHandler.List)
			admin.PUT("/:id/role", userHandler.UpdateRole)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
