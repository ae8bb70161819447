package handlers

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/internal/api/presenters"
	"Recipehub-Backend/pkg/taxonomy"

	"github.com/gofiber/fiber/v2"
)

type (
	DataHandler interface {
		GetFilterData(c *fiber.Ctx) error
	}

	dataHandler struct {
		taxonomyService taxonomy.TaxonomyService
	}
)

func NewDataHandler(taxonomyService taxonomy.TaxonomyService) DataHandler {
	return &dataHandler{taxonomyService: taxonomyService}
}

func (h *dataHandler) GetFilterData(c *fiber.Ctx) error {
	res, err := h.taxonomyService.GetFilterData(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFilters, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFilters)
}
