package shopping

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		AddItem(ctx context.Context, req domain.SaveShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		GetItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error)
		UpdateItem(ctx context.Context, itemID string, req domain.SaveShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		DeleteItem(ctx context.Context, itemID string, userID string) error
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

func (s *shoppingService) AddItem(ctx context.Context, req domain.SaveShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}

	ing, err := s.shoppingRepository.GetOrCreateIngredient(ctx, req.Name)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	item := entities.ShoppingListItem{
		ID:           uuid.New(),
		UserID:       ownerID,
		IngredientID: ing.ID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Checked:      req.Checked,
	}
	if err := s.shoppingRepository.AddItem(ctx, &item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return buildItemResponse(&item, ing.Name), nil
}

func (s *shoppingService) GetItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.shoppingRepository.GetItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		name := ""
		if item.Ingredient != nil {
			name = item.Ingredient.Name
		}
		res = append(res, buildItemResponse(item, name))
	}
	return res, nil
}

func (s *shoppingService) UpdateItem(ctx context.Context, itemID string, req domain.SaveShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	ing, err := s.shoppingRepository.GetOrCreateIngredient(ctx, req.Name)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	item.IngredientID = ing.ID
	item.Ingredient = nil
	item.Quantity = req.Quantity
	item.Unit = req.Unit
	item.Checked = req.Checked
	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return buildItemResponse(item, ing.Name), nil
}

func (s *shoppingService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}
	return s.shoppingRepository.DeleteItem(ctx, item.ID)
}

func (s *shoppingService) getOwnedItem(ctx context.Context, itemID string, userID string) (*entities.ShoppingListItem, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, domain.ErrShoppingItemNotFound
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.shoppingRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}
	if item.UserID != ownerID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}

func buildItemResponse(item *entities.ShoppingListItem, name string) domain.ShoppingItemResponse {
	return domain.ShoppingItemResponse{
		ID:       item.ID.String(),
		Name:     name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Checked:  item.Checked,
	}
}
