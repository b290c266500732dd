package service

import (
	"errors"
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/repository"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ItemService struct {
	itemRepo *repository.ItemRepository
}

func NewItemService(itemRepo *repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// ItemInput carries the fields accepted on item creation.
type ItemInput struct {
	UniqueID     string
	Name         string
	Description  string
	CategoryID   *uint
	State        models.ItemState
	Location     string
	PurchaseDate *time.Time
	ExpiryDate   *time.Time
}

func (s *ItemService) Create(in ItemInput, creatorID uint) (*models.Item, error) {
	if in.UniqueID == "" {
		return nil, invalidInput("unique_id is required")
	}
	if in.Name == "" {
		return nil, invalidInput("name is required")
	}

	state := in.State
	if state == "" {
		state = models.StateGood
	}
	if !state.Valid() {
		return nil, ErrInvalidState
	}

	item := &models.Item{
		UniqueID:     in.UniqueID,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		State:        state,
		Location:     in.Location,
		PurchaseDate: in.PurchaseDate,
		ExpiryDate:   in.ExpiryDate,
		CreatedBy:    &creatorID,
	}

	if err := s.itemRepo.CreateItem(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUniqueIDAlreadyExists
		}
		logger.Log.Error("Failed to create item",
			zap.String("unique_id", in.UniqueID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Item created",
		zap.Uint("item_id", item.ID),
		zap.String("unique_id", item.UniqueID),
	)

	return item, nil
}

func (s *ItemService) Get(id uint) (*models.Item, error) {
	item, err := s.itemRepo.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *ItemService) List(offset, limit int) ([]models.Item, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.itemRepo.ListItems(offset, limit)
}

// Delete removes an item and its transaction history.
func (s *ItemService) Delete(id uint) (*models.Item, error) {
	item, err := s.itemRepo.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if err := s.itemRepo.DeleteItem(id); err != nil {
		logger.Log.Error("Failed to delete item",
			zap.Uint("item_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Item deleted",
		zap.Uint("item_id", id),
		zap.String("unique_id", item.UniqueID),
	)

	return item, nil
}
