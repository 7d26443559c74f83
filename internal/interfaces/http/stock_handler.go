package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/inventory"
	"github.com/raihanpm/bisnisku-api/internal/domain"
)

// StockHandler handles stock movements and low-stock suggestions (protected).
type StockHandler struct {
	movementUC *inventory.RegisterMovementUseCase
	lowStockUC *inventory.LowStockUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(movementUC *inventory.RegisterMovementUseCase, lowStockUC *inventory.LowStockUseCase) *StockHandler {
	return &StockHandler{movementUC: movementUC, lowStockUC: lowStockUC}
}

// RegisterMovement godoc
// @Summary      Register a stock movement
// @Description  "in" restocks and blends the unit price, "out" consumes, "adjust" corrects with a signed quantity.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movement data"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id required"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.movementUC.RegisterMovement(c.Context(), businessID, GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "not enough stock for this movement"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByMaterial godoc
// @Summary      List a material's movements
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        materialId  path   string  true   "Material ID"
// @Param        limit       query  int     false  "Limit"   default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.MovementListResponse
// @Router       /api/stock/materials/{materialId}/movements [get]
func (h *StockHandler) ListByMaterial(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.movementUC.ListByMaterial(GetBusinessID(c), c.Params("materialId"), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStockSuggestions godoc
// @Summary      Restock suggestions for materials below their threshold
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockSuggestionDTO
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStockSuggestions(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id required"})
	}
	out, err := h.lowStockUC.GenerateSuggestions(c.Context(), businessID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
