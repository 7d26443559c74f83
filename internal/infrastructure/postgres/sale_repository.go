package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements SaleRepository over PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the adapter. Pass a pool or a tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, business_id, channel, reference, total, notes, created_by, created_at`

// Create persists a sale with its items. Callers run it inside a transaction
// through the TxRunner so the movements commit with it.
func (r *SaleRepo) Create(sale *entity.Sale, items []entity.SaleItem) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.BusinessID, sale.Channel, sale.Reference,
		sale.Total, sale.Notes, sale.CreatedBy, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, it := range items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, variation_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, it.SaleID, it.ProductID, nullableID(it.VariationID), it.Quantity, it.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID fetches a sale and its items.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, []entity.SaleItem, error) {
	ctx := context.Background()
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.BusinessID, &s.Channel, &s.Reference, &s.Total,
		&s.Notes, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, variation_id, quantity, unit_price
		FROM sale_items WHERE sale_id = $1 ORDER BY id ASC`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		var variationID *string
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &variationID,
			&it.Quantity, &it.UnitPrice); err != nil {
			return nil, nil, fmt.Errorf("scan sale item: %w", err)
		}
		if variationID != nil {
			it.VariationID = *variationID
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return &s, items, nil
}

// ListByBusiness lists a business's sales without items, newest first.
func (r *SaleRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Channel, &s.Reference, &s.Total,
			&s.Notes, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
