package pantry

import (
	"Recipehub-Backend/entities"
	"Recipehub-Backend/pkg/ingredient"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddItem(ctx context.Context, item *entities.PantryItem) error
		GetItemByID(ctx context.Context, id uuid.UUID) (*entities.PantryItem, error)
		GetItems(ctx context.Context, userID uuid.UUID) ([]*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		DeleteItem(ctx context.Context, id uuid.UUID) error
		GetOrCreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error)
	}

	pantryRepository struct {
		db          *gorm.DB
		ingredients ingredient.IngredientRepository
	}
)

func NewPantryRepository(db *gorm.DB, ingredients ingredient.IngredientRepository) PantryRepository {
	return &pantryRepository{db: db, ingredients: ingredients}
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Preload("Ingredient").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetItems(ctx context.Context, userID uuid.UUID) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

// GetOrCreateIngredient resolves a free-form name against the shared
// master ingredient list.
func (r *pantryRepository) GetOrCreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error) {
	return r.ingredients.GetOrCreate(ctx, r.db, name)
}
