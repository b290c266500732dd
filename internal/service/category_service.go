package service

import (
	"errors"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/repository"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) Create(name, description string, creatorID uint) (*models.Category, error) {
	if name == "" {
		return nil, invalidInput("name is required")
	}

	category := &models.Category{
		Name:        name,
		Description: description,
		CreatedBy:   &creatorID,
	}

	if err := s.categoryRepo.CreateCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameAlreadyExists
		}
		logger.Log.Error("Failed to create category",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name),
	)

	return category, nil
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *CategoryService) List(offset, limit int) ([]models.Category, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.categoryRepo.ListCategories(offset, limit)
}

func (s *CategoryService) Update(id uint, name, description string) (*models.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	category.Name = name
	category.Description = description

	if err := s.categoryRepo.UpdateCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameAlreadyExists
		}
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	if err := s.categoryRepo.DeleteCategory(id); err != nil {
		logger.Log.Error("Failed to delete category",
			zap.Uint("category_id", id),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Category deleted", zap.Uint("category_id", id))
	return nil
}
