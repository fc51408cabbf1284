package mysql

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

// orderClause resolves the filter's sort key and direction against the
// allow-list. The returned clause is built only from mapped values, never from
// client input.
func orderClause(filter repository.ProductFilter) (string, error) {
	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "startTime"
	}
	column, ok := repository.SortColumns[sortBy]
	if !ok {
		return "", fmt.Errorf("%w: unknown sortBy %q", domain.ErrValidation, filter.SortBy)
	}

	dir := "ASC"
	switch strings.ToLower(filter.SortOrder) {
	case "", "asc":
	case "desc":
		dir = "DESC"
	default:
		return "", fmt.Errorf("%w: sortOrder must be asc or desc", domain.ErrValidation)
	}
	return column + " " + dir, nil
}

func (r *productRepo) applyFilter(q *gorm.DB, filter repository.ProductFilter) (*gorm.DB, error) {
	order, err := orderClause(filter)
	if err != nil {
		return nil, err
	}
	if filter.Status != "" {
		q = q.Where("products.status = ?", filter.Status)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	q = q.Order(order).Limit(limit)
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	return q, nil
}

// Create inserts the product, the category link and the image rows as one
// unit. A missing category aborts the whole write, so no orphan product can be
// left behind by a failed link step.
func (r *productRepo) Create(product *domain.Product, categoryID uint64, imageURLs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category domain.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: category %d", domain.ErrNotFound, categoryID)
			}
			return err
		}
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"INSERT INTO category_products (category_id, product_id) VALUES (?, ?)",
			categoryID, product.ID,
		).Error; err != nil {
			return err
		}
		return createImages(tx, product, imageURLs)
	})
}

func createImages(tx *gorm.DB, product *domain.Product, imageURLs []string) error {
	if len(imageURLs) == 0 {
		return nil
	}
	images := make([]domain.ProductImage, 0, len(imageURLs))
	for _, url := range imageURLs {
		images = append(images, domain.ProductImage{ProductID: product.ID, ImageURL: url})
	}
	if err := tx.Create(&images).Error; err != nil {
		return err
	}
	product.Images = images
	return nil
}

func (r *productRepo) FindByID(id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.Preload("Images").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("product FindByID error: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Update(product *domain.Product, imageURLs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images", "Categories").Save(product).Error; err != nil {
			return err
		}
		if imageURLs == nil {
			return nil
		}
		// The image set is replaced wholesale when a new one is supplied.
		if err := tx.Where("product_id = ?", product.ID).
			Delete(&domain.ProductImage{}).Error; err != nil {
			return err
		}
		product.Images = nil
		return createImages(tx, product, imageURLs)
	})
}

func (r *productRepo) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		return deleteProductTree(tx, []uint64{id})
	})
}

// deleteProductTree removes the given products and every row hanging off them:
// images, bids, reviews, messages, category links, and orders with their
// shipments. Shared by product delete and the user delete cascade.
func deleteProductTree(tx *gorm.DB, productIDs []uint64) error {
	if len(productIDs) == 0 {
		return nil
	}
	for _, model := range []interface{}{
		&domain.ProductImage{}, &domain.Bid{}, &domain.Review{},
	} {
		if err := tx.Where("product_id IN ?", productIDs).Delete(model).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("product_id IN ?", productIDs).Delete(&domain.Message{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM category_products WHERE product_id IN ?", productIDs).Error; err != nil {
		return err
	}

	var orderIDs []uint64
	if err := tx.Model(&domain.Order{}).Where("product_id IN ?", productIDs).
		Pluck("id", &orderIDs).Error; err != nil {
		return err
	}
	if len(orderIDs) > 0 {
		if err := tx.Where("order_id IN ?", orderIDs).Delete(&domain.Shipment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", orderIDs).Delete(&domain.Order{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("id IN ?", productIDs).Delete(&domain.Product{}).Error
}

func (r *productRepo) List(filter repository.ProductFilter) ([]domain.Product, error) {
	q, err := r.applyFilter(r.db.Model(&domain.Product{}), filter)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	if err := q.Preload("Images").Find(&out).Error; err != nil {
		log.Printf("product List error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) ListByCategory(categoryID uint64, filter repository.ProductFilter) ([]domain.Product, error) {
	base := r.db.Model(&domain.Product{}).
		Joins("JOIN category_products cp ON cp.product_id = products.id").
		Where("cp.category_id = ?", categoryID)
	q, err := r.applyFilter(base, filter)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	if err := q.Preload("Images").Find(&out).Error; err != nil {
		log.Printf("product ListByCategory error: %v", err)
		return nil, err
	}
	return out, nil
}

// Trending ranks products by bid count, descending, product id ascending on
// ties so the ordering is deterministic. Products without bids never rank.
func (r *productRepo) Trending(limit int) ([]repository.TrendingProduct, error) {
	type trendingRow struct {
		ProductID uint64
		BidCount  int64
	}
	var rows []trendingRow
	if err := r.db.Model(&domain.Bid{}).
		Select("product_id, COUNT(id) AS bid_count").
		Group("product_id").
		Order("bid_count DESC, product_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		log.Printf("product Trending error: %v", err)
		return nil, err
	}
	if len(rows) == 0 {
		return []repository.TrendingProduct{}, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	var products []domain.Product
	if err := r.db.Preload("Images").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]repository.TrendingProduct, 0, len(rows))
	for _, row := range rows {
		p, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		out = append(out, repository.TrendingProduct{Product: p, BidCount: row.BidCount})
	}
	return out, nil
}
