package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/raihanpm/bisnisku-api/internal/domain"
	"github.com/raihanpm/bisnisku-api/internal/domain/entity"
	"github.com/raihanpm/bisnisku-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implements MaterialRepository over PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository builds the adapter. Pass a pool or a tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, business_id, name, unit, unit_price, stock, min_stock, created_at, updated_at`

// Create persists a new material.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.BusinessID, material.Name, material.Unit,
		material.UnitPrice, material.Stock, material.MinStock,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID fetches a material by ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.BusinessID, &m.Name, &m.Unit, &m.UnitPrice,
		&m.Stock, &m.MinStock, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// ListByBusiness lists a business's materials with pagination.
func (r *MaterialRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials
		WHERE business_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	return scanMaterials(rows)
}

// ListLowStock returns materials at or below their threshold.
func (r *MaterialRepo) ListLowStock(businessID string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials
		WHERE business_id = $1 AND stock <= min_stock ORDER BY stock - min_stock ASC`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list low stock materials: %w", err)
	}
	defer rows.Close()
	return scanMaterials(rows)
}

// Update updates descriptive fields. Stock and unit price are excluded; they
// change only through ApplyStockChange inside a movement transaction.
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, unit = $3, min_stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Unit, material.MinStock, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// ApplyStockChange writes the new stock level and weighted-average unit price.
func (r *MaterialRepo) ApplyStockChange(materialID string, newStock, newUnitPrice decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE materials SET stock = $2, unit_price = $3, updated_at = now() WHERE id = $1`,
		materialID, newStock, newUnitPrice,
	)
	if err != nil {
		return fmt.Errorf("apply stock change: %w", err)
	}
	return nil
}

// Delete removes a material by ID.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

func scanMaterials(rows pgx.Rows) ([]*entity.Material, error) {
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.Name, &m.Unit, &m.UnitPrice,
			&m.Stock, &m.MinStock, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
