package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

// SortColumns is the allow-list for product listing sort keys. The public key is
// mapped to a real column name; anything not in this map is rejected before a
// query is built, so client input never reaches an ORDER BY clause verbatim.
var SortColumns = map[string]string{
	"startTime": "start_time",
	"endTime":   "end_time",
	"title":     "title",
}

const DefaultListLimit = 5

type ProductFilter struct {
	Status    domain.ProductStatus
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type TrendingProduct struct {
	domain.Product
	BidCount int64 `json:"bidCount"`
}

type ProductRepository interface {
	// Create inserts the product, its category link and its images in one
	// transaction.
	Create(product *domain.Product, categoryID uint64, imageURLs []string) error
	FindByID(id uint64) (*domain.Product, error)
	// Update persists the loaded product; a non-nil imageURLs replaces the
	// image set wholesale inside the same transaction.
	Update(product *domain.Product, imageURLs []string) error
	Delete(id uint64) error

	List(filter ProductFilter) ([]domain.Product, error)
	ListByCategory(categoryID uint64, filter ProductFilter) ([]domain.Product, error)
	Trending(limit int) ([]TrendingProduct, error)
}
