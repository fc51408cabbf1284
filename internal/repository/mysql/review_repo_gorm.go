package mysql

import (
	"errors"
	"log"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"gorm.io/gorm"
)

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepo) FindByID(id uint64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.First(&rv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("review FindByID error: %v", err)
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepo) Update(review *domain.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepo) Delete(id uint64) error {
	res := r.db.Delete(&domain.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reviewRepo) FindByProductID(productID uint64) ([]domain.Review, error) {
	var out []domain.Review
	if err := r.db.Where("product_id = ?", productID).
		Order("review_date DESC").Find(&out).Error; err != nil {
		log.Printf("review FindByProductID error: %v", err)
		return nil, err
	}
	return out, nil
}
