package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

type CategoryRepository interface {
	Create(category *domain.Category) error
	FindByID(id uint64) (*domain.Category, error)
	FindAll() ([]domain.Category, error)
	Update(category *domain.Category) error
	Delete(id uint64) error
}
