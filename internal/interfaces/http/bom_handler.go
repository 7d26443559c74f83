package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/usecase"
	"github.com/raihanpm/bisnisku-api/internal/domain"
)

// BOMHandler handles the bill-of-materials routes (protected).
type BOMHandler struct {
	uc *usecase.BOMUseCase
}

// NewBOMHandler builds the handler.
func NewBOMHandler(uc *usecase.BOMUseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// Create godoc
// @Summary      Add a BOM line to a product
// @Description  The material's current unit price is snapshotted as the line cost.
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Param        body       body  dto.CreateBOMItemRequest  true  "BOM line data"
// @Success      201        {object}  dto.BOMItemResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/products/{productId}/bom [post]
func (h *BOMHandler) Create(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id required"})
	}
	var in dto.CreateBOMItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.MaterialID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_id is required"})
	}
	out, err := h.uc.Create(businessID, c.Params("productId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product or material not found"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct godoc
// @Summary      List a product's BOM with derived base cost
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200        {object}  dto.BOMListResponse
// @Router       /api/products/{productId}/bom [get]
func (h *BOMHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(GetBusinessID(c), c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ResnapshotCosts godoc
// @Summary      Refresh every BOM line's cost from current material prices
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200        {object}  dto.BOMListResponse
// @Router       /api/products/{productId}/bom/resnapshot [post]
func (h *BOMHandler) ResnapshotCosts(c *fiber.Ctx) error {
	out, err := h.uc.ResnapshotCosts(GetBusinessID(c), c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a BOM line
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "BOM line ID"
// @Param        body  body  dto.UpdateBOMItemRequest  true  "Fields to update"
// @Success      200   {object}  dto.BOMItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bom/{id} [put]
func (h *BOMHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBOMItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "BOM line not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a BOM line
// @Tags         bom
// @Security     Bearer
// @Param        id  path  string  true  "BOM line ID"
// @Success      204
// @Router       /api/bom/{id} [delete]
func (h *BOMHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetBusinessID(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "BOM line not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
