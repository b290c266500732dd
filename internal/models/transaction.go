package models

import "time"

type TransactionAction string

const (
	ActionSignIn      TransactionAction = "sign_in"
	ActionSignOut     TransactionAction = "sign_out"
	ActionAdd         TransactionAction = "add"
	ActionEdit        TransactionAction = "edit"
	ActionStateChange TransactionAction = "state_change"
)

// Valid reports whether a is one of the known transaction actions.
func (a TransactionAction) Valid() bool {
	switch a {
	case ActionSignIn, ActionSignOut, ActionAdd, ActionEdit, ActionStateChange:
		return true
	}
	return false
}

// Transaction is a logged inventory event (sign-in/out, state change),
// not a database transaction. Rows are immutable once created.
type Transaction struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	ItemID    uint              `gorm:"not null;index" json:"item_id"`
	UserID    uint              `gorm:"not null;index" json:"user_id"`
	Action    TransactionAction `gorm:"type:varchar(20);not null" json:"action"`
	Timestamp time.Time         `gorm:"index" json:"timestamp"`
	Notes     string            `gorm:"type:text" json:"notes"`
	State     *ItemState        `gorm:"type:varchar(20)" json:"state,omitempty"`
	ImageURL  string            `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CreatedAt time.Time         `json:"created_at"`

	Item *Item `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
