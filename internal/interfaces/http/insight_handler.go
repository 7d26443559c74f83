package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/insight"
)

// InsightHandler serves the derived profitability views (protected).
type InsightHandler struct {
	uc *insight.InsightUseCase
}

// NewInsightHandler builds the handler.
func NewInsightHandler(uc *insight.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// GetProductInsight godoc
// @Summary      Full profitability view of one product
// @Description  Cost basis, margin, ROAS thresholds, channel metrics, per-variation detail and recommendations. Recomputed per request.
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product ID"
// @Success      200        {object}  dto.ProductInsightDTO
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/insights/products/{productId} [get]
func (h *InsightHandler) GetProductInsight(c *fiber.Ctx) error {
	out, err := h.uc.GetProductInsight(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil || out.Product.BusinessID != GetBusinessID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	return c.JSON(out)
}

// ListCostSummaries godoc
// @Summary      Cost and margin summary for every product
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ProductCostSummaryDTO
// @Router       /api/insights/products [get]
func (h *InsightHandler) ListCostSummaries(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id required"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListCostSummaries(businessID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
