package services

import (
	"fmt"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"
)

type ReviewService struct {
	reviews repository.ReviewRepository
}

func NewReviewService(reviews repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) Create(productID, userID uint64, rating int, comment string, reviewDate time.Time) (*domain.Review, error) {
	if productID == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: productId and userId are required", domain.ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if reviewDate.IsZero() {
		reviewDate = time.Now()
	}

	review := &domain.Review{
		Rating:     rating,
		Comment:    comment,
		ReviewDate: reviewDate,
		ProductID:  productID,
		UserID:     userID,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

type ReviewPatch struct {
	Rating     *int
	Comment    *string
	ReviewDate *time.Time
}

func (s *ReviewService) Update(id uint64, patch ReviewPatch) (*domain.Review, error) {
	review, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, fmt.Errorf("%w: review %d", domain.ErrNotFound, id)
	}

	if patch.Rating != nil {
		if *patch.Rating < 1 || *patch.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
		}
		review.Rating = *patch.Rating
	}
	applyString(&review.Comment, patch.Comment)
	if patch.ReviewDate != nil {
		review.ReviewDate = *patch.ReviewDate
	}

	if err := s.reviews.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(id uint64) error {
	return s.reviews.Delete(id)
}

func (s *ReviewService) ListByProduct(productID uint64) ([]domain.Review, error) {
	return s.reviews.FindByProductID(productID)
}
