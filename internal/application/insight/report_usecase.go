package insight

import (
	"context"
	"fmt"

	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// ReportUseCase renders a product insight as a printable PDF.
type ReportUseCase struct {
	insightUC    *InsightUseCase
	businessRepo repository.BusinessRepository
	pdfGen       ReportPDFGenerator
}

// NewReportUseCase builds the use case.
func NewReportUseCase(insightUC *InsightUseCase, businessRepo repository.BusinessRepository, pdfGen ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{insightUC: insightUC, businessRepo: businessRepo, pdfGen: pdfGen}
}

// GenerateProductReport derives the insight and hands it to the PDF adapter.
// The product must belong to the caller's business.
func (uc *ReportUseCase) GenerateProductReport(ctx context.Context, businessID, productID string) ([]byte, error) {
	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	insight, err := uc.insightUC.GetProductInsight(productID)
	if err != nil {
		return nil, err
	}
	if insight == nil {
		return nil, domain.ErrNotFound
	}
	if insight.Product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	pdf, err := uc.pdfGen.GenerateInsightPDF(ctx, business, insight)
	if err != nil {
		return nil, fmt.Errorf("generate insight pdf: %w", err)
	}
	return pdf, nil
}
