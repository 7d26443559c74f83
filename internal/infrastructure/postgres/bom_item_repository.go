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

var _ repository.BOMItemRepository = (*BOMItemRepo)(nil)

// BOMItemRepo implements BOMItemRepository over PostgreSQL.
// variation_id is stored as NULL for base lines and surfaced as "" in the
// entity, so the application layer can branch on the empty string.
type BOMItemRepo struct {
	q Querier
}

// NewBOMItemRepository builds the adapter. Pass a pool or a tx (Querier).
func NewBOMItemRepository(q Querier) *BOMItemRepo {
	return &BOMItemRepo{q: q}
}

const bomColumns = `id, product_id, variation_id, material_id, quantity, unit_cost, notes, created_at, updated_at`

func scanBOMItem(row pgx.Row) (*entity.BOMItem, error) {
	var it entity.BOMItem
	var variationID *string
	err := row.Scan(
		&it.ID, &it.ProductID, &variationID, &it.MaterialID,
		&it.Quantity, &it.UnitCost, &it.Notes, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if variationID != nil {
		it.VariationID = *variationID
	}
	return &it, nil
}

// Create persists a new BOM line.
func (r *BOMItemRepo) Create(item *entity.BOMItem) error {
	query := `
		INSERT INTO bom_items (` + bomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, nullableID(item.VariationID), item.MaterialID,
		item.Quantity, item.UnitCost, item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom item: %w", err)
	}
	return nil
}

// GetByID fetches a BOM line by ID.
func (r *BOMItemRepo) GetByID(id string) (*entity.BOMItem, error) {
	it, err := scanBOMItem(r.q.QueryRow(context.Background(),
		`SELECT `+bomColumns+` FROM bom_items WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get bom item: %w", err)
	}
	return it, nil
}

// ListByProduct returns every BOM line of a product, base and variation ones.
func (r *BOMItemRepo) ListByProduct(productID string) ([]*entity.BOMItem, error) {
	return r.list(`SELECT `+bomColumns+` FROM bom_items
		WHERE product_id = $1 ORDER BY created_at ASC`, productID)
}

// ListBase returns only the base (variation-less) lines of a product.
func (r *BOMItemRepo) ListBase(productID string) ([]*entity.BOMItem, error) {
	return r.list(`SELECT `+bomColumns+` FROM bom_items
		WHERE product_id = $1 AND variation_id IS NULL ORDER BY created_at ASC`, productID)
}

// ListByVariation returns a variation's own lines.
func (r *BOMItemRepo) ListByVariation(variationID string) ([]*entity.BOMItem, error) {
	return r.list(`SELECT `+bomColumns+` FROM bom_items
		WHERE variation_id = $1 ORDER BY created_at ASC`, variationID)
}

func (r *BOMItemRepo) list(query string, arg any) ([]*entity.BOMItem, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list bom items: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMItem
	for rows.Next() {
		var it entity.BOMItem
		var variationID *string
		if err := rows.Scan(&it.ID, &it.ProductID, &variationID, &it.MaterialID,
			&it.Quantity, &it.UnitCost, &it.Notes, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bom item: %w", err)
		}
		if variationID != nil {
			it.VariationID = *variationID
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update updates quantity, snapshot cost and notes of a line.
func (r *BOMItemRepo) Update(item *entity.BOMItem) error {
	query := `
		UPDATE bom_items SET quantity = $2, unit_cost = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitCost, item.Notes, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bom item: %w", err)
	}
	return nil
}

// Delete removes a BOM line by ID.
func (r *BOMItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bom_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bom item: %w", err)
	}
	return nil
}

// nullableID maps "" to NULL for optional foreign keys.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
