package entities

import (
	"github.com/google/uuid"
)

// Reference tables for the eight recipe taxonomies. Seeding happens in
// the migration step; the API only reads them.

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Cuisine struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Season struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type DietaryRestriction struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type CookingMethod struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type MainIngredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// DifficultyLevel carries an explicit sort rank instead of sorting by
// name (Easy before Hard before Medium would read wrong).
type DifficultyLevel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	SortRank int    `gorm:"not null" json:"sort_rank"`
}

type Occasion struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Junction rows between a recipe and one taxonomy entry. Composite
// primary keys, cascade-deleted with either parent.

type RecipeCategory struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CategoryID uint      `gorm:"primaryKey" json:"category_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type RecipeCuisine struct {
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CuisineID uint      `gorm:"primaryKey" json:"cuisine_id"`

	Recipe  *Recipe  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Cuisine *Cuisine `gorm:"foreignKey:CuisineID;constraint:OnDelete:CASCADE"`
}

type RecipeSeason struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	SeasonID uint      `gorm:"primaryKey" json:"season_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Season *Season `gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE"`
}

type RecipeDietaryRestriction struct {
	RecipeID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	DietaryRestrictionID uint      `gorm:"primaryKey" json:"dietary_restriction_id"`

	Recipe             *Recipe             `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	DietaryRestriction *DietaryRestriction `gorm:"foreignKey:DietaryRestrictionID;constraint:OnDelete:CASCADE"`
}

type RecipeCookingMethod struct {
	RecipeID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CookingMethodID uint      `gorm:"primaryKey" json:"cooking_method_id"`

	Recipe        *Recipe        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CookingMethod *CookingMethod `gorm:"foreignKey:CookingMethodID;constraint:OnDelete:CASCADE"`
}

type RecipeMainIngredient struct {
	RecipeID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	MainIngredientID uint      `gorm:"primaryKey" json:"main_ingredient_id"`

	Recipe         *Recipe         `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	MainIngredient *MainIngredient `gorm:"foreignKey:MainIngredientID;constraint:OnDelete:CASCADE"`
}

type RecipeDifficultyLevel struct {
	RecipeID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	DifficultyLevelID uint      `gorm:"primaryKey" json:"difficulty_level_id"`

	Recipe          *Recipe          `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	DifficultyLevel *DifficultyLevel `gorm:"foreignKey:DifficultyLevelID;constraint:OnDelete:CASCADE"`
}

type RecipeOccasion struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	OccasionID uint      `gorm:"primaryKey" json:"occasion_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Occasion *Occasion `gorm:"foreignKey:OccasionID;constraint:OnDelete:CASCADE"`
}
