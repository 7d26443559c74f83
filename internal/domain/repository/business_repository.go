package repository

import "github.com/raihanpm/bisnisku-api/internal/domain/entity"

// BusinessRepository persistence port for Business (DIP).
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	Update(business *entity.Business) error
	List(limit, offset int) ([]*entity.Business, error)
}
