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

var _ repository.VariationRepository = (*VariationRepo)(nil)

// VariationRepo implements VariationRepository over PostgreSQL.
type VariationRepo struct {
	q Querier
}

// NewVariationRepository builds the adapter. Pass a pool or a tx (Querier).
func NewVariationRepository(q Querier) *VariationRepo {
	return &VariationRepo{q: q}
}

const variationColumns = `id, product_id, name, sku, price, stock, created_at, updated_at`

// Create persists a new variation.
func (r *VariationRepo) Create(variation *entity.ProductVariation) error {
	query := `
		INSERT INTO product_variations (` + variationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		variation.ID, variation.ProductID, variation.Name, variation.SKU,
		variation.Price, variation.Stock, variation.CreatedAt, variation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variation: %w", err)
	}
	return nil
}

// GetByID fetches a variation by ID.
func (r *VariationRepo) GetByID(id string) (*entity.ProductVariation, error) {
	query := `SELECT ` + variationColumns + ` FROM product_variations WHERE id = $1`
	var v entity.ProductVariation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.Price, &v.Stock, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variation: %w", err)
	}
	return &v, nil
}

// ListByProduct lists a product's variations in creation order.
func (r *VariationRepo) ListByProduct(productID string) ([]*entity.ProductVariation, error) {
	query := `SELECT ` + variationColumns + ` FROM product_variations
		WHERE product_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductVariation
	for rows.Next() {
		var v entity.ProductVariation
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.Price,
			&v.Stock, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update updates an existing variation.
func (r *VariationRepo) Update(variation *entity.ProductVariation) error {
	query := `
		UPDATE product_variations SET name = $2, sku = $3, price = $4, stock = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		variation.ID, variation.Name, variation.SKU, variation.Price,
		variation.Stock, variation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update variation: %w", err)
	}
	return nil
}

// Delete removes a variation by ID. Its BOM lines cascade.
func (r *VariationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_variations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete variation: %w", err)
	}
	return nil
}
