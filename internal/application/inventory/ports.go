package inventory

import (
	"context"

	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

// TxRunner runs a callback with movement and material repositories bound to
// one database transaction. Implemented by the pgx adapter.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		materialRepo repository.MaterialRepository,
	) error) error
}
