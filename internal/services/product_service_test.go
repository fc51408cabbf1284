package services

import (
	"testing"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/mocks"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validProductCreate() ProductCreate {
	return ProductCreate{
		Title:      "Vintage camera",
		Condition:  domain.ConditionUsed,
		InitialBid: decimal.RequireFromString("100.00"),
		StartTime:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC),
		UserID:     1,
		CategoryID: 2,
		Images:     []string{"https://img.example.com/camera.jpg"},
	}
}

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ProductCreate)
		setupMocks  func(*mocks.MockProductRepository)
		expectedErr error
	}{
		{
			name:        "missing title",
			mutate:      func(in *ProductCreate) { in.Title = "" },
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "missing category",
			mutate:      func(in *ProductCreate) { in.CategoryID = 0 },
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "unknown condition",
			mutate:      func(in *ProductCreate) { in.Condition = "broken" },
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "non-positive initial bid",
			mutate:      func(in *ProductCreate) { in.InitialBid = decimal.Zero },
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "end time before start time",
			mutate:      func(in *ProductCreate) { in.EndTime = in.StartTime.Add(-time.Hour) },
			expectedErr: domain.ErrValidation,
		},
		{
			name:   "status defaults to active",
			mutate: func(in *ProductCreate) {},
			setupMocks: func(repo *mocks.MockProductRepository) {
				repo.On("Create", mock.AnythingOfType("*domain.Product"), uint64(2),
					[]string{"https://img.example.com/camera.jpg"}).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Product).ID = 10
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}
			svc := NewProductService(repo)

			in := validProductCreate()
			tt.mutate(&in)
			product, err := svc.Create(in)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(10), product.ID)
				assert.Equal(t, domain.ProductActive, product.Status)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProductService_Update_PartialPatch(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindByID", uint64(10)).Return(&domain.Product{
		ID:         10,
		Title:      "Vintage camera",
		Condition:  domain.ConditionUsed,
		InitialBid: decimal.RequireFromString("100.00"),
		Status:     domain.ProductActive,
	}, nil)
	repo.On("Update", mock.AnythingOfType("*domain.Product"), []string(nil)).Return(nil)
	svc := NewProductService(repo)

	status := domain.ProductSold
	product, err := svc.Update(10, ProductPatch{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.ProductSold, product.Status)
	assert.Equal(t, "Vintage camera", product.Title)
	assert.Equal(t, domain.ConditionUsed, product.Condition)
	assert.True(t, product.InitialBid.Equal(decimal.RequireFromString("100.00")))
	repo.AssertExpectations(t)
}

func TestProductService_Update_RejectsUnknownStatus(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindByID", uint64(10)).Return(&domain.Product{ID: 10, Status: domain.ProductActive}, nil)
	svc := NewProductService(repo)

	status := domain.ProductStatus("archived")
	product, err := svc.Update(10, ProductPatch{Status: &status})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, product)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_List_RejectsUnknownStatus(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	svc := NewProductService(repo)

	products, err := svc.List(repository.ProductFilter{Status: "archived"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, products)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestProductService_Trending_DefaultLimit(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("Trending", DefaultTrendingLimit).Return([]repository.TrendingProduct{}, nil)
	svc := NewProductService(repo)

	_, err := svc.Trending(0)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
