package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/insight"
	"github.com/raihanpm/bisnisku-api/internal/domain"
)

// ReportHandler serves the printable PDF report (protected).
type ReportHandler struct {
	uc *insight.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *insight.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProductReport godoc
// @Summary      Download the product profitability report as PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        productId  path  string  true  "Product ID"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/products/{productId} [get]
func (h *ReportHandler) ProductReport(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id required"})
	}
	productID := c.Params("productId")
	pdf, err := h.uc.GenerateProductReport(c.Context(), businessID, productID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=laporan-%s.pdf", productID))
	return c.Send(pdf)
}
