package pantry

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddItem(ctx context.Context, req domain.SavePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		GetItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		UpdateItem(ctx context.Context, itemID string, req domain.SavePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		DeleteItem(ctx context.Context, itemID string, userID string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func (s *pantryService) AddItem(ctx context.Context, req domain.SavePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	ing, err := s.pantryRepository.GetOrCreateIngredient(ctx, req.Name)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item := entities.PantryItem{
		ID:           uuid.New(),
		UserID:       ownerID,
		IngredientID: ing.ID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	}
	if err := s.pantryRepository.AddItem(ctx, &item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return domain.PantryItemResponse{
		ID:       item.ID.String(),
		Name:     ing.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
	}, nil
}

func (s *pantryService) GetItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.pantryRepository.GetItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		name := ""
		if item.Ingredient != nil {
			name = item.Ingredient.Name
		}
		res = append(res, domain.PantryItemResponse{
			ID:       item.ID.String(),
			Name:     name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		})
	}
	return res, nil
}

func (s *pantryService) UpdateItem(ctx context.Context, itemID string, req domain.SavePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	ing, err := s.pantryRepository.GetOrCreateIngredient(ctx, req.Name)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item.IngredientID = ing.ID
	item.Ingredient = nil
	item.Quantity = req.Quantity
	item.Unit = req.Unit
	if err := s.pantryRepository.UpdateItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return domain.PantryItemResponse{
		ID:       item.ID.String(),
		Name:     ing.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
	}, nil
}

func (s *pantryService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}
	return s.pantryRepository.DeleteItem(ctx, item.ID)
}

func (s *pantryService) getOwnedItem(ctx context.Context, itemID string, userID string) (*entities.PantryItem, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, domain.ErrPantryItemNotFound
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}
	if item.UserID != ownerID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}
