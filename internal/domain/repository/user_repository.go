package repository

import "github.com/raihanpm/bisnisku-api/internal/domain/entity"

// UserRepository persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndBusiness(email, businessID string) (*entity.User, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
}
