package models

import "time"

type ItemState string

const (
	StateGood     ItemState = "good"
	StateModerate ItemState = "moderate"
	StateBad      ItemState = "bad"
)

// Valid reports whether s is one of the known item states.
func (s ItemState) Valid() bool {
	switch s {
	case StateGood, StateModerate, StateBad:
		return true
	}
	return false
}

type Item struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UniqueID     string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"unique_id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	CategoryID   *uint      `gorm:"index" json:"category_id,omitempty"`
	State        ItemState  `gorm:"type:varchar(20);not null;default:'good'" json:"state"`
	Location     string     `gorm:"type:varchar(100)" json:"location"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	CreatedBy    *uint      `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Category reference is cleared (not cascaded) when the category goes away
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}
