package ingredient

import (
	"Recipehub-Backend/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	// IngredientRepository resolves free-form ingredient names against
	// the shared master list. Methods take the *gorm.DB explicitly so
	// get-or-create can participate in a caller's transaction; recipes,
	// pantries and shopping lists all resolve names through it.
	IngredientRepository interface {
		GetOrCreate(ctx context.Context, db *gorm.DB, name string) (*entities.Ingredient, error)
		GetByID(ctx context.Context, db *gorm.DB, id uint) (*entities.Ingredient, error)
	}

	ingredientRepository struct{}
)

func NewIngredientRepository() IngredientRepository {
	return ingredientRepository{}
}

// NormalizeName lower-cases and trims an ingredient name so "Tomato"
// and "tomato" resolve to the same row.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (ingredientRepository) GetOrCreate(ctx context.Context, db *gorm.DB, name string) (*entities.Ingredient, error) {
	normalized := NormalizeName(name)

	var ing entities.Ingredient
	err := db.WithContext(ctx).Where("name = ?", normalized).First(&ing).Error
	if err == nil {
		return &ing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ing = entities.Ingredient{Name: normalized}
	if err := db.WithContext(ctx).Create(&ing).Error; err != nil {
		// A concurrent request may have inserted the same name; the
		// unique index decides the winner and the loser re-queries.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing entities.Ingredient
			if err := db.WithContext(ctx).Where("name = ?", normalized).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &ing, nil
}

func (ingredientRepository) GetByID(ctx context.Context, db *gorm.DB, id uint) (*entities.Ingredient, error) {
	var ing entities.Ingredient
	if err := db.WithContext(ctx).Where("id = ?", id).First(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}
