package mysql

import (
	"testing"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_Create_MissingCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "seller", "seller@example.com")

	err := repo.Create(&domain.Product{
		Title:      "Vintage camera",
		Condition:  domain.ConditionUsed,
		InitialBid: decimal.RequireFromString("100.00"),
		Status:     domain.ProductActive,
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(time.Hour),
		UserID:     user.ID,
	}, 77, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 0, count(t, db, &domain.Product{}))
}

func TestProductRepo_Create_LinksCategoryAndImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "seller", "seller@example.com")
	category := seedCategory(t, db, "Cameras")

	product := &domain.Product{
		Title:      "Vintage camera",
		Condition:  domain.ConditionUsed,
		InitialBid: decimal.RequireFromString("199.99"),
		Status:     domain.ProductActive,
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(time.Hour),
		UserID:     user.ID,
	}
	urls := []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"}
	require.NoError(t, repo.Create(product, category.ID, urls))

	got, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Images, 2)
	// Money survives the round trip exactly.
	assert.Equal(t, "199.99", got.InitialBid.StringFixed(2))

	var links int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM category_products WHERE category_id = ? AND product_id = ?",
		category.ID, product.ID).Scan(&links).Error)
	assert.EqualValues(t, 1, links)
}

func TestProductRepo_Update_ImageSemantics(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "seller", "seller@example.com")
	category := seedCategory(t, db, "Cameras")

	product := &domain.Product{
		Title:      "Vintage camera",
		Condition:  domain.ConditionUsed,
		InitialBid: decimal.RequireFromString("100.00"),
		Status:     domain.ProductActive,
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(time.Hour),
		UserID:     user.ID,
	}
	require.NoError(t, repo.Create(product, category.ID,
		[]string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"}))

	// nil keeps the existing set.
	product.Title = "Vintage camera, boxed"
	require.NoError(t, repo.Update(product, nil))
	assert.EqualValues(t, 2, count(t, db, &domain.ProductImage{}))

	// A non-nil set replaces wholesale.
	require.NoError(t, repo.Update(product, []string{"https://img.example.com/3.jpg"}))
	got, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "https://img.example.com/3.jpg", got.Images[0].ImageURL)
	assert.Equal(t, "Vintage camera, boxed", got.Title)
}

func TestProductRepo_List_FilterSortLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "seller", "seller@example.com")

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedProduct(t, db, user.ID, "active", domain.ProductActive, base.Add(time.Duration(i)*time.Hour))
	}
	seedProduct(t, db, user.ID, "sold", domain.ProductSold, base.Add(-time.Hour))
	seedProduct(t, db, user.ID, "expired", domain.ProductExpired, base.Add(-2*time.Hour))

	out, err := repo.List(repository.ProductFilter{
		Status: domain.ProductActive, SortBy: "startTime", SortOrder: "asc", Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, base, out[0].StartTime.UTC())
	assert.Equal(t, base.Add(time.Hour), out[1].StartTime.UTC())

	// Default limit caps an unbounded listing.
	out, err = repo.List(repository.ProductFilter{SortBy: "startTime"})
	require.NoError(t, err)
	assert.Len(t, out, repository.DefaultListLimit)
}

func TestProductRepo_List_RejectsUnknownSort(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	_, err := repo.List(repository.ProductFilter{SortBy: "passwd_hash"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = repo.List(repository.ProductFilter{SortBy: "startTime", SortOrder: "sideways"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductRepo_ListByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "seller", "seller@example.com")
	cameras := seedCategory(t, db, "Cameras")
	watches := seedCategory(t, db, "Watches")

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inCat := seedProduct(t, db, user.ID, "camera", domain.ProductActive, base)
	outCat := seedProduct(t, db, user.ID, "watch", domain.ProductActive, base)
	require.NoError(t, db.Exec("INSERT INTO category_products (category_id, product_id) VALUES (?, ?)",
		cameras.ID, inCat.ID).Error)
	require.NoError(t, db.Exec("INSERT INTO category_products (category_id, product_id) VALUES (?, ?)",
		watches.ID, outCat.ID).Error)

	out, err := repo.ListByCategory(cameras.ID, repository.ProductFilter{Status: domain.ProductActive})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, inCat.ID, out[0].ID)
}

func TestProductRepo_Trending(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	hot := seedProduct(t, db, user.ID, "hot", domain.ProductActive, base)
	warm := seedProduct(t, db, user.ID, "warm", domain.ProductActive, base)
	seedProduct(t, db, user.ID, "cold", domain.ProductActive, base)

	seedBid(t, db, bidder.ID, hot.ID, "110.00", base.Add(time.Minute))
	seedBid(t, db, bidder.ID, hot.ID, "120.00", base.Add(2*time.Minute))
	seedBid(t, db, bidder.ID, hot.ID, "130.00", base.Add(3*time.Minute))
	seedBid(t, db, bidder.ID, warm.ID, "105.00", base.Add(time.Minute))

	top, err := repo.Trending(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, hot.ID, top[0].Product.ID)
	assert.EqualValues(t, 3, top[0].BidCount)

	// Products without bids never rank, whatever the limit.
	all, err := repo.Trending(10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, hot.ID, all[0].Product.ID)
	assert.Equal(t, warm.ID, all[1].Product.ID)
}

func TestProductRepo_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	user := seedUser(t, db, "seller", "seller@example.com")
	bidder := seedUser(t, db, "bidder", "bidder@example.com")
	category := seedCategory(t, db, "Cameras")

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	product := seedProduct(t, db, user.ID, "camera", domain.ProductActive, base)
	require.NoError(t, db.Exec("INSERT INTO category_products (category_id, product_id) VALUES (?, ?)",
		category.ID, product.ID).Error)
	seedBid(t, db, bidder.ID, product.ID, "110.00", base)

	require.NoError(t, repo.Delete(product.ID))

	assert.EqualValues(t, 0, count(t, db, &domain.Product{}))
	assert.EqualValues(t, 0, count(t, db, &domain.Bid{}))
	var links int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM category_products").Scan(&links).Error)
	assert.EqualValues(t, 0, links)
}
