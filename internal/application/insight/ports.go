package insight

import (
	"context"

	"github.com/raihanpm/bisnisku-api/internal/application/dto"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
)

// ReportPDFGenerator output port for the printable insight report.
// Implemented by the Maroto adapter in infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateInsightPDF(ctx context.Context, business *entity.Business, insight *dto.ProductInsightDTO) ([]byte, error)
}
