package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/application/usecase"
	"github.com/raihanpm/bisnisku-api/internal/domain"
)

// AdvisorHandler serves the LLM narration of a product insight (protected).
type AdvisorHandler struct {
	uc *usecase.AdvisorUseCase
}

// NewAdvisorHandler builds the handler.
func NewAdvisorHandler(uc *usecase.AdvisorUseCase) *AdvisorHandler {
	return &AdvisorHandler{uc: uc}
}

// Narrate godoc
// @Summary      Plain-language reading of a product's metrics
// @Description  Advisory only. The numbers and recommendations are computed deterministically first; the model only phrases them.
// @Tags         advisor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdvisorRequest  true  "Product to narrate"
// @Success      200   {object}  dto.AdvisorNarrativeDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/advisor/narrate [post]
func (h *AdvisorHandler) Narrate(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "business_id required"})
	}
	var in dto.AdvisorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Narrate(c.Context(), businessID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id is required"})
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		default:
			// Vendor outages and timeouts surface here.
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "ADVISOR_UNAVAILABLE", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
