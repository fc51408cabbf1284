package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

type BidRepository interface {
	// Place runs the bid settlement transaction: the product must be active,
	// the amount must beat the current highest bid (or meet the initial bid
	// when none exists), the previous winning bid is cleared, the new bid is
	// inserted as winning and the product's current bid price is updated.
	Place(bid *domain.Bid) error
	FindByID(id uint64) (*domain.Bid, error)
	// Delete re-settles the auction when the removed bid was winning: the
	// highest remaining bid is promoted, or the current bid price is cleared
	// when no bids remain.
	Delete(id uint64) error
	FindByProductID(productID uint64) ([]domain.Bid, error)
	FindByUserID(userID uint64) ([]domain.Bid, error)
	// HighestForProduct returns the bid with the maximum amount, earliest bid
	// time winning ties.
	HighestForProduct(productID uint64) (*domain.Bid, error)
}
