package repository

import (
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// RecordTransaction inserts a transaction row and, when it carries a new
// item state, applies that state to the referenced item. Both writes share
// one database transaction: either both commit or both roll back. The item
// and user are loaded first inside the same boundary, so a dangling
// reference surfaces as gorm.ErrRecordNotFound before anything is written.
func (r *TransactionRepository) RecordTransaction(txn *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, txn.ItemID).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, txn.UserID).Error; err != nil {
			return err
		}

		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		if txn.State != nil {
			if err := tx.Model(&item).Update("state", *txn.State).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *TransactionRepository) ListTransactions(offset, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Preload("Item").
		Preload("User").
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error

	return transactions, err
}

// GetByDateRange returns transactions with timestamp in [start, end],
// inclusive on both ends.
func (r *TransactionRepository) GetByDateRange(start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Preload("Item").
		Preload("User").
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp").
		Find(&transactions).Error

	return transactions, err
}

func (r *TransactionRepository) CountTransactions() (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Count(&count).Error
	return count, err
}
