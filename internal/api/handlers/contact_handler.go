package handlers

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/internal/api/presenters"
	"Recipehub-Backend/internal/utils/mailing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ContactHandler interface {
		SendMessage(c *fiber.Ctx) error
	}

	contactHandler struct {
		validator *validator.Validate
	}
)

func NewContactHandler(validator *validator.Validate) ContactHandler {
	return &contactHandler{validator: validator}
}

func (h *contactHandler) SendMessage(c *fiber.Ctx) error {
	req := new(domain.ContactRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendContact, err)
	}

	if err := mailing.SendContactMail(req.Name, req.Email, req.Message); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendContact, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendContact)
}
