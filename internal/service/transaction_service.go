package service

import (
	"errors"
	"time"

	"github.com/Fuanyi-237/inventory-hyclass/internal/models"
	"github.com/Fuanyi-237/inventory-hyclass/internal/notifier"
	"github.com/Fuanyi-237/inventory-hyclass/internal/repository"
	"github.com/Fuanyi-237/inventory-hyclass/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TransactionService records inventory events. Recording a state change
// updates the referenced item in the same storage transaction: a crash
// between the two writes must not leave a transaction row whose state was
// never applied to the item.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	publisher       notifier.Publisher
}

func NewTransactionService(transactionRepo *repository.TransactionRepository, publisher notifier.Publisher) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

// RecordInput carries the fields accepted on transaction creation.
type RecordInput struct {
	ItemID    uint
	UserID    uint
	Action    models.TransactionAction
	Timestamp time.Time
	Notes     string
	State     *models.ItemState
	ImageURL  string
}

// Record validates the input, persists the transaction (and the item-state
// update, if any) atomically, then publishes a fire-and-forget event.
func (t *TransactionService) Record(in RecordInput) (*models.Transaction, error) {
	if !in.Action.Valid() {
		return nil, ErrInvalidAction
	}
	if in.State != nil && !in.State.Valid() {
		return nil, ErrInvalidState
	}

	timestamp := in.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	txn := &models.Transaction{
		ItemID:    in.ItemID,
		UserID:    in.UserID,
		Action:    in.Action,
		Timestamp: timestamp,
		Notes:     in.Notes,
		State:     in.State,
		ImageURL:  in.ImageURL,
	}

	if err := t.transactionRepo.RecordTransaction(txn); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		logger.Log.Error("Failed to record transaction",
			zap.Uint("item_id", in.ItemID),
			zap.Uint("user_id", in.UserID),
			zap.String("action", string(in.Action)),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Transaction recorded",
		zap.Uint("transaction_id", txn.ID),
		zap.Uint("item_id", txn.ItemID),
		zap.String("action", string(txn.Action)),
	)

	t.notify(txn)

	return txn, nil
}

// notify publishes the event best-effort; failures are logged and dropped.
func (t *TransactionService) notify(txn *models.Transaction) {
	event := notifier.Event{
		TransactionID: txn.ID,
		ItemID:        txn.ItemID,
		UserID:        txn.UserID,
		Action:        string(txn.Action),
		Timestamp:     txn.Timestamp,
	}
	if txn.State != nil {
		event.State = string(*txn.State)
	}

	if err := t.publisher.Publish(event); err != nil {
		logger.Log.Warn("Failed to publish transaction event",
			zap.Uint("transaction_id", txn.ID),
			zap.Error(err),
		)
	}
}

func (t *TransactionService) List(offset, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return t.transactionRepo.ListTransactions(offset, limit)
}

// GetByDateRange returns transactions with timestamps inside the inclusive
// [start, end] window.
func (t *TransactionService) GetByDateRange(start, end time.Time) ([]models.Transaction, error) {
	return t.transactionRepo.GetByDateRange(start, end)
}
