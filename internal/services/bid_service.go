package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/infra/rabbitmq"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// BidService records bids through the atomic settlement transaction: a bid
// that does not beat the standing price is rejected and nothing changes; an
// accepted bid becomes the winning bid and moves the product's current price.
type BidService struct {
	bids      repository.BidRepository
	publisher rabbitmq.PublisherInterface
}

func NewBidService(bids repository.BidRepository, publisher rabbitmq.PublisherInterface) *BidService {
	return &BidService{bids: bids, publisher: publisher}
}

func (s *BidService) PlaceBid(ctx context.Context, productID, userID uint64, amount decimal.Decimal, bidTime time.Time) (*domain.Bid, error) {
	if productID == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: productId and userId are required", domain.ErrValidation)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: bidAmount must be positive", domain.ErrValidation)
	}
	if bidTime.IsZero() {
		bidTime = time.Now()
	}

	bid := &domain.Bid{
		Amount:    amount,
		BidTime:   bidTime,
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.bids.Place(bid); err != nil {
		return nil, err
	}

	go s.publishBidPlaced(context.Background(), bid)

	return bid, nil
}

func (s *BidService) publishBidPlaced(ctx context.Context, bid *domain.Bid) {
	if s.publisher == nil {
		return
	}
	evt := domain.BidPlacedEvent{
		BidID:     bid.ID,
		ProductID: bid.ProductID,
		UserID:    bid.UserID,
		Amount:    bid.Amount.StringFixed(2),
		BidTime:   bid.BidTime,
	}
	if err := s.publisher.Publish(ctx, "bid.placed", evt); err != nil {
		log.Printf("failed to publish bid.placed: %v", err)
	}
}

func (s *BidService) Get(id uint64) (*domain.Bid, error) {
	bid, err := s.bids.FindByID(id)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, fmt.Errorf("%w: bid %d", domain.ErrNotFound, id)
	}
	return bid, nil
}

func (s *BidService) Delete(id uint64) error {
	return s.bids.Delete(id)
}

func (s *BidService) ListByProduct(productID uint64) ([]domain.Bid, error) {
	return s.bids.FindByProductID(productID)
}

func (s *BidService) ListByUser(userID uint64) ([]domain.Bid, error) {
	return s.bids.FindByUserID(userID)
}

func (s *BidService) HighestBid(productID uint64) (*domain.Bid, error) {
	bid, err := s.bids.HighestForProduct(productID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, fmt.Errorf("%w: product %d has no bids", domain.ErrNotFound, productID)
	}
	return bid, nil
}
