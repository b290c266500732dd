package handler

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Fuanyi-237/inventory-hyclass/internal/middleware"
	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/notifier"
	"github.com/Fuanyi-237/inventory-hyclass/internal/repository"
	"github.com/Fuanyi-237/inventory-hyclass/internal/service"
	"github.com/Fuanyi-237/inventory-hyclass/internal/testutil"
	"github.com/Fuanyi-237/inventory-hyclass/internal/utils"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	integrationSecret   = "integration-test-secret"
	integrationTokenTTL = 0 // GenerateToken default
)

// testEnv wires the full HTTP surface against an in-memory database, the
// same way cmd/server does, minus Redis and TLS concerns.
type testEnv struct {
	db     *testutil.TestDatabase
	router *gin.Engine

	userRepo        *repository.UserRepository
	itemRepo        *repository.ItemRepository
	transactionRepo *repository.TransactionRepository

	userService *service.UserService
}

func setupTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	testDB := testutil.SetupTestDatabase(t)

	userRepo := repository.NewUserRepository(testDB.DB)
	categoryRepo := repository.NewCategoryRepository(testDB.DB)
	itemRepo := repository.NewItemRepository(testDB.DB)
	transactionRepo := repository.NewTransactionRepository(testDB.DB)

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, integrationSecret, integrationTokenTTL)
	categoryService := service.NewCategoryService(categoryRepo)
	itemService := service.NewItemService(itemRepo)
	transactionService := service.NewTransactionService(transactionRepo, notifier.NoopPublisher{})

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	categoryHandler := NewCategoryHandler(categoryService, userService)
	itemHandler := NewItemHandler(itemService, userService)
	transactionHandler := NewTransactionHandler(transactionService, userService)
	uploadHandler := NewUploadHandler(t.TempDir())

	router := gin.New()

	api := router.Group("/api/v1")

	api.POST("/auth/token", authHandler.Token)
	api.POST("/users/", userHandler.Create)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(integrationSecret))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/categories/", categoryHandler.List)
		protected.GET("/categories/:id", categoryHandler.Get)
		protected.GET("/items/", itemHandler.List)
		protected.GET("/transactions/", transactionHandler.List)
		protected.GET("/transactions/export", transactionHandler.Export)
		protected.POST("/uploads/upload", uploadHandler.Upload)

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

		admin := protected.Group("/users")
		admin.Use(middleware.RequireRoles(models.RoleSuperadmin))
		{
			admin.GET("/", userHandler.List)
			admin.PUT("/:id/role", userHandler.UpdateRole)
		}
	}

	return &testEnv{
		db:              testDB,
		router:          router,
		userRepo:        userRepo,
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
		userService:     userService,
	}
}

func (e *testEnv) teardown(t *testing.T) {
	e.db.Teardown(t)
}

func (e *testEnv) clean(t *testing.T) {
	testutil.CleanDatabase(t, e.db.DB)
}

// seedUser inserts a user with the given role and returns it together with
// a valid bearer token.
func (e *testEnv) seedUser(t *testing.T, username string, role models.Role) (*models.User, string) {
	user, err := testutil.CreateTestUser(username, username+"@example.com", "Password123", role)
	if err != nil {
		t.Fatalf("Failed to build test user: %v", err)
	}
	if err := e.db.DB.Create(user).Error; err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	token, err := utils.GenerateToken(user, integrationSecret, integrationTokenTTL)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return user, token
}

// request performs an HTTP request against the test router. An empty token
// leaves the Authorization header unset.
func (e *testEnv) request(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func (e *testEnv) jsonRequest(method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	return e.request(method, path, token, body, "application/json")
}

func assertErrorKind(t *testing.T, body map[string]any, kind string) {
	t.Helper()
	if body["kind"] != kind {
		t.Errorf("Expected error kind %q, got %v", kind, body["kind"])
	}
	if _, ok := body["error"]; !ok {
		t.Error("Error response should carry an error message")
	}
}
