package domain

import (
	"errors"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessGetPantryItems   = "success get pantry items"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedGetPantryItems   = "failed to get pantry items"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"

	ErrPantryItemNotFound = errors.New("pantry item not found")
)

type (
	SavePantryItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gte=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	PantryItemResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}
)
