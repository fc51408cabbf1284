package mysql

import (
	"errors"
	"fmt"
	"log"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type bidRepo struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) repository.BidRepository {
	return &bidRepo{db: db}
}

// Place settles the bid atomically: validate against the current highest bid,
// demote the previous winner, insert the new bid as winning and move the
// product's current bid price forward. Any failed step rolls the whole thing
// back.
func (r *bidRepo) Place(bid *domain.Bid) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.First(&product, bid.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d", domain.ErrNotFound, bid.ProductID)
			}
			return err
		}
		if product.Status != domain.ProductActive {
			return fmt.Errorf("%w: product %d is not open for bidding", domain.ErrValidation, product.ID)
		}

		var highest domain.Bid
		err := tx.Where("product_id = ?", bid.ProductID).
			Order("amount DESC, bid_time ASC").
			First(&highest).Error
		switch {
		case err == nil:
			if bid.Amount.Cmp(highest.Amount) <= 0 {
				return fmt.Errorf("%w: bid must exceed current highest bid %s",
					domain.ErrValidation, highest.Amount.StringFixed(2))
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if bid.Amount.Cmp(product.InitialBid) < 0 {
				return fmt.Errorf("%w: bid must meet the initial bid %s",
					domain.ErrValidation, product.InitialBid.StringFixed(2))
			}
		default:
			return err
		}

		if err := tx.Model(&domain.Bid{}).
			Where("product_id = ? AND is_winning_bid = ?", bid.ProductID, true).
			Update("is_winning_bid", false).Error; err != nil {
			return err
		}

		bid.IsWinningBid = true
		if err := tx.Create(bid).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Product{}).
			Where("id = ?", bid.ProductID).
			Update("current_bid_price", decimal.NewNullDecimal(bid.Amount)).Error
	})
}

func (r *bidRepo) FindByID(id uint64) (*domain.Bid, error) {
	var b domain.Bid
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("bid FindByID error: %v", err)
		return nil, err
	}
	return &b, nil
}

// Delete re-settles the auction when the removed bid was the winner: the
// highest remaining bid is promoted and current_bid_price follows it, or goes
// back to null when no bids are left.
func (r *bidRepo) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var bid domain.Bid
		if err := tx.First(&bid, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&domain.Bid{}, id).Error; err != nil {
			return err
		}
		if !bid.IsWinningBid {
			return nil
		}

		var next domain.Bid
		err := tx.Where("product_id = ?", bid.ProductID).
			Order("amount DESC, bid_time ASC").
			First(&next).Error
		switch {
		case err == nil:
			if err := tx.Model(&domain.Bid{}).Where("id = ?", next.ID).
				Update("is_winning_bid", true).Error; err != nil {
				return err
			}
			return tx.Model(&domain.Product{}).Where("id = ?", bid.ProductID).
				Update("current_bid_price", decimal.NewNullDecimal(next.Amount)).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Model(&domain.Product{}).Where("id = ?", bid.ProductID).
				Update("current_bid_price", nil).Error
		default:
			return err
		}
	})
}

func (r *bidRepo) FindByProductID(productID uint64) ([]domain.Bid, error) {
	var out []domain.Bid
	if err := r.db.Where("product_id = ?", productID).
		Order("bid_time ASC").Find(&out).Error; err != nil {
		log.Printf("bid FindByProductID error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *bidRepo) FindByUserID(userID uint64) ([]domain.Bid, error) {
	var out []domain.Bid
	if err := r.db.Where("user_id = ?", userID).
		Order("bid_time ASC").Find(&out).Error; err != nil {
		log.Printf("bid FindByUserID error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *bidRepo) HighestForProduct(productID uint64) (*domain.Bid, error) {
	var b domain.Bid
	err := r.db.Where("product_id = ?", productID).
		Order("amount DESC, bid_time ASC").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("bid HighestForProduct error: %v", err)
		return nil, err
	}
	return &b, nil
}
