package entities

import (
	"github.com/google/uuid"
)

type PantryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	IngredientID uint      `gorm:"not null" json:"ingredient_id"`
	Quantity     float64   `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit         string    `json:"unit"`

	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
