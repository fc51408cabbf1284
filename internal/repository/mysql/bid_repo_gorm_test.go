package mysql

import (
	"testing"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeBid(userID, productID uint64, amount string, at time.Time) *domain.Bid {
	return &domain.Bid{
		Amount:    decimal.RequireFromString(amount),
		BidTime:   at,
		UserID:    userID,
		ProductID: productID,
	}
}

func TestBidRepo_Place_Settlement(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	seller := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	product := seedProduct(t, db, seller.ID, "camera", domain.ProductActive, base)

	// First bid only needs to meet the initial bid.
	first := placeBid(bidder.ID, product.ID, "100.00", base.Add(time.Minute))
	require.NoError(t, repo.Place(first))
	assert.True(t, first.IsWinningBid)

	got, err := NewProductRepository(db).FindByID(product.ID)
	require.NoError(t, err)
	require.True(t, got.CurrentBidPrice.Valid)
	assert.Equal(t, "100.00", got.CurrentBidPrice.Decimal.StringFixed(2))

	// Matching the standing price is not enough; nothing changes.
	err = repo.Place(placeBid(bidder.ID, product.ID, "100.00", base.Add(2*time.Minute)))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualValues(t, 1, count(t, db, &domain.Bid{}))

	// A higher bid wins and demotes the previous winner.
	second := placeBid(bidder.ID, product.ID, "150.00", base.Add(3*time.Minute))
	require.NoError(t, repo.Place(second))
	assert.True(t, second.IsWinningBid)

	var winners []domain.Bid
	require.NoError(t, db.Where("is_winning_bid = ?", true).Find(&winners).Error)
	require.Len(t, winners, 1)
	assert.Equal(t, second.ID, winners[0].ID)

	got, err = NewProductRepository(db).FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "150.00", got.CurrentBidPrice.Decimal.StringFixed(2))
}

func TestBidRepo_Delete_RepromotesRemainingHighest(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	seller := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	product := seedProduct(t, db, seller.ID, "camera", domain.ProductActive, base)

	first := placeBid(bidder.ID, product.ID, "100.00", base.Add(time.Minute))
	require.NoError(t, repo.Place(first))
	winner := placeBid(bidder.ID, product.ID, "150.00", base.Add(2*time.Minute))
	require.NoError(t, repo.Place(winner))

	require.NoError(t, repo.Delete(winner.ID))

	// The earlier bid is winning again and the advertised price follows it.
	got, err := repo.FindByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsWinningBid)

	p, err := NewProductRepository(db).FindByID(product.ID)
	require.NoError(t, err)
	require.True(t, p.CurrentBidPrice.Valid)
	assert.Equal(t, "100.00", p.CurrentBidPrice.Decimal.StringFixed(2))

	// A bid between the old and new standing price is now acceptable.
	require.NoError(t, repo.Place(placeBid(bidder.ID, product.ID, "120.00", base.Add(3*time.Minute))))
	p, err = NewProductRepository(db).FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "120.00", p.CurrentBidPrice.Decimal.StringFixed(2))
}

func TestBidRepo_Delete_LastBidClearsCurrentPrice(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	seller := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	product := seedProduct(t, db, seller.ID, "camera", domain.ProductActive, base)

	only := placeBid(bidder.ID, product.ID, "100.00", base.Add(time.Minute))
	require.NoError(t, repo.Place(only))
	require.NoError(t, repo.Delete(only.ID))

	p, err := NewProductRepository(db).FindByID(product.ID)
	require.NoError(t, err)
	assert.False(t, p.CurrentBidPrice.Valid)

	// Settlement starts over from the initial bid.
	err = repo.Place(placeBid(bidder.ID, product.ID, "99.99", base.Add(2*time.Minute)))
	assert.ErrorIs(t, err, domain.ErrValidation)
	require.NoError(t, repo.Place(placeBid(bidder.ID, product.ID, "100.00", base.Add(3*time.Minute))))
}

func TestBidRepo_Delete_NonWinningBidLeavesSettlement(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	seller := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	product := seedProduct(t, db, seller.ID, "camera", domain.ProductActive, base)

	loser := placeBid(bidder.ID, product.ID, "100.00", base.Add(time.Minute))
	require.NoError(t, repo.Place(loser))
	winner := placeBid(bidder.ID, product.ID, "150.00", base.Add(2*time.Minute))
	require.NoError(t, repo.Place(winner))

	require.NoError(t, repo.Delete(loser.ID))

	got, err := repo.FindByID(winner.ID)
	require.NoError(t, err)
	assert.True(t, got.IsWinningBid)
	p, err := NewProductRepository(db).FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "150.00", p.CurrentBidPrice.Decimal.StringFixed(2))
}

func TestBidRepo_Place_BelowInitialBid(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	seller := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	product := seedProduct(t, db, seller.ID, "camera", domain.ProductActive, time.Now())

	err := repo.Place(placeBid(bidder.ID, product.ID, "99.99", time.Now()))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualValues(t, 0, count(t, db, &domain.Bid{}))
}

func TestBidRepo_Place_ClosedProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	seller := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	product := seedProduct(t, db, seller.ID, "camera", domain.ProductSold, time.Now())

	err := repo.Place(placeBid(bidder.ID, product.ID, "500.00", time.Now()))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBidRepo_Place_MissingProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	bidder := seedUser(t, db, "bidder", "bidder@example.com")

	err := repo.Place(placeBid(bidder.ID, 99, "500.00", time.Now()))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBidRepo_HighestForProduct_TieBreaksOnTime(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)
	seller := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	product := seedProduct(t, db, seller.ID, "camera", domain.ProductActive, base)

	seedBid(t, db, bidder.ID, product.ID, "120.00", base.Add(2*time.Minute))
	earlier := seedBid(t, db, bidder.ID, product.ID, "120.00", base.Add(time.Minute))

	got, err := repo.HighestForProduct(product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, earlier.ID, got.ID)
}

func TestBidRepo_HighestForProduct_NoBids(t *testing.T) {
	db := newTestDB(t)
	repo := NewBidRepository(db)

	got, err := repo.HighestForProduct(5)

	assert.NoError(t, err)
	assert.Nil(t, got)
}
