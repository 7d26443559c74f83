package sales

import (
	"context"

	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// TxRunner runs a callback with sale, movement and material repositories bound
// to one database transaction, so a sale and its material consumption commit
// or roll back together.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
		materialRepo repository.MaterialRepository,
	) error) error
}
