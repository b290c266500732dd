package repository

import (
	"errors"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) CreateItem(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepository) GetItemByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.Preload("Category").First(&item, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

func (r *ItemRepository) ListItems(offset, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.
		Preload("Category").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&items).Error

	return items, err
}

// DeleteItem removes an item together with its transactions. Both deletes
// run in one transactional unit; the transaction log must never reference
// a vanished item.
func (r *ItemRepository) DeleteItem(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
}
