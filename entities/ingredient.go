package entities

// Ingredient rows are shared across recipes, pantries and shopping
// lists; names are stored lower-cased so the unique index enforces
// case-insensitive uniqueness.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
