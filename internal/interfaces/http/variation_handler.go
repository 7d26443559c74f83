package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/usecase"
	"github.com/raihanpm/bisnisku-api/internal/domain"
)

// VariationHandler handles product variation CRUD (protected).
type VariationHandler struct {
	uc *usecase.VariationUseCase
}

// NewVariationHandler builds the handler.
func NewVariationHandler(uc *usecase.VariationUseCase) *VariationHandler {
	return &VariationHandler{uc: uc}
}

// Create godoc
// @Summary      Add a variation to a product
// @Tags         variations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Param        body       body  dto.CreateVariationRequest  true  "Variation data"
// @Success      201        {object}  dto.VariationResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/variations [post]
func (h *VariationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVariationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Create(GetBusinessID(c), c.Params("productId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "variation already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct godoc
// @Summary      List a product's variations
// @Tags         variations
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200        {array}  dto.VariationResponse
// @Router       /api/products/{productId}/variations [get]
func (h *VariationHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(GetBusinessID(c), c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update variation
// @Tags         variations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Variation ID"
// @Param        body  body  dto.UpdateVariationRequest  true  "Fields to update"
// @Success      200   {object}  dto.VariationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/variations/{id} [put]
func (h *VariationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVariationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variation not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete variation
// @Tags         variations
// @Security     Bearer
// @Param        id  path  string  true  "Variation ID"
// @Success      204
// @Router       /api/variations/{id} [delete]
func (h *VariationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variation not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
