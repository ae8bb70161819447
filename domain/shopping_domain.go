package domain

import (
	"errors"
)

var (
	MessageSuccessAddShoppingItem    = "shopping list item added successfully"
	MessageSuccessGetShoppingItems   = "success get shopping list"
	MessageSuccessUpdateShoppingItem = "shopping list item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping list item deleted successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping list item"
	MessageFailedGetShoppingItems   = "failed to get shopping list"
	MessageFailedUpdateShoppingItem = "failed to update shopping list item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping list item"

	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)

type (
	SaveShoppingItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gte=0"`
		Unit     string  `json:"unit" validate:"required"`
		Checked  bool    `json:"checked"`
	}

	ShoppingItemResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Checked  bool    `json:"checked"`
	}
)
