package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

type ReviewRepository interface {
	Create(review *domain.Review) error
	FindByID(id uint64) (*domain.Review, error)
	Update(review *domain.Review) error
	Delete(id uint64) error
	FindByProductID(productID uint64) ([]domain.Review, error)
}
