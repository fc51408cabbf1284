package services

import (
	"fmt"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"github.com/shopspring/decimal"
)

const DefaultTrendingLimit = 2

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

type ProductCreate struct {
	Title       string
	Description string
	Condition   domain.ProductCondition
	InitialBid  decimal.Decimal
	Status      domain.ProductStatus
	StartTime   time.Time
	EndTime     time.Time
	UserID      uint64
	CategoryID  uint64
	Images      []string
}

func (s *ProductService) Create(in ProductCreate) (*domain.Product, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.UserID == 0 || in.CategoryID == 0 {
		return nil, fmt.Errorf("%w: userId and categoryId are required", domain.ErrValidation)
	}
	if !validCondition(in.Condition) {
		return nil, fmt.Errorf("%w: unknown condition %q", domain.ErrValidation, in.Condition)
	}
	if in.Status == "" {
		in.Status = domain.ProductActive
	}
	if !validProductStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}
	if in.InitialBid.Sign() <= 0 {
		return nil, fmt.Errorf("%w: initialBid must be positive", domain.ErrValidation)
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", domain.ErrValidation)
	}

	product := &domain.Product{
		Title:       in.Title,
		Description: in.Description,
		Condition:   in.Condition,
		InitialBid:  in.InitialBid,
		Status:      in.Status,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		UserID:      in.UserID,
	}
	if err := s.products.Create(product, in.CategoryID, in.Images); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(id uint64) (*domain.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	return product, nil
}

type ProductPatch struct {
	Title       *string
	Description *string
	Condition   *domain.ProductCondition
	InitialBid  *decimal.Decimal
	Status      *domain.ProductStatus
	StartTime   *time.Time
	EndTime     *time.Time
	// Images replaces the whole image set when non-nil.
	Images []string
}

func (s *ProductService) Update(id uint64, patch ProductPatch) (*domain.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	applyString(&product.Title, patch.Title)
	applyString(&product.Description, patch.Description)
	if patch.Condition != nil {
		if !validCondition(*patch.Condition) {
			return nil, fmt.Errorf("%w: unknown condition %q", domain.ErrValidation, *patch.Condition)
		}
		product.Condition = *patch.Condition
	}
	if patch.InitialBid != nil {
		if patch.InitialBid.Sign() <= 0 {
			return nil, fmt.Errorf("%w: initialBid must be positive", domain.ErrValidation)
		}
		product.InitialBid = *patch.InitialBid
	}
	if patch.Status != nil {
		if !validProductStatus(*patch.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *patch.Status)
		}
		product.Status = *patch.Status
	}
	if patch.StartTime != nil {
		product.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		product.EndTime = *patch.EndTime
	}

	if err := s.products.Update(product, patch.Images); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id uint64) error {
	return s.products.Delete(id)
}

func (s *ProductService) List(filter repository.ProductFilter) ([]domain.Product, error) {
	if filter.Status != "" && !validProductStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.products.List(filter)
}

func (s *ProductService) ListByCategory(categoryID uint64, filter repository.ProductFilter) ([]domain.Product, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("%w: categoryId is required", domain.ErrValidation)
	}
	if filter.Status != "" && !validProductStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.products.ListByCategory(categoryID, filter)
}

func (s *ProductService) Trending(limit int) ([]repository.TrendingProduct, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	return s.products.Trending(limit)
}

func validCondition(c domain.ProductCondition) bool {
	switch c {
	case domain.ConditionNew, domain.ConditionUsed, domain.ConditionRefurbished:
		return true
	}
	return false
}

func validProductStatus(s domain.ProductStatus) bool {
	switch s {
	case domain.ProductActive, domain.ProductSold, domain.ProductExpired:
		return true
	}
	return false
}
