package shopping

import (
	"Recipehub-Backend/entities"
	"Recipehub-Backend/pkg/ingredient"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AddItem(ctx context.Context, item *entities.ShoppingListItem) error
		GetItemByID(ctx context.Context, id uuid.UUID) (*entities.ShoppingListItem, error)
		GetItems(ctx context.Context, userID uuid.UUID) ([]*entities.ShoppingListItem, error)
		UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteItem(ctx context.Context, id uuid.UUID) error
		GetOrCreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error)
	}

	shoppingRepository struct {
		db          *gorm.DB
		ingredients ingredient.IngredientRepository
	}
)

func NewShoppingRepository(db *gorm.DB, ingredients ingredient.IngredientRepository) ShoppingRepository {
	return &shoppingRepository{db: db, ingredients: ingredients}
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Preload("Ingredient").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) GetItems(ctx context.Context, userID uuid.UUID) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepository) GetOrCreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error) {
	return r.ingredients.GetOrCreate(ctx, r.db, name)
}
