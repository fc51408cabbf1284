package services

import (
	"context"
	"testing"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validOrderCreate() OrderCreate {
	return OrderCreate{
		OrderStatus:   domain.OrderPending,
		PaymentStatus: domain.PaymentUnpaid,
		PaymentMethod: domain.PayCreditCard,
		TotalAmount:   decimal.RequireFromString("250.00"),
		ProductID:     5,
	}
}

func TestOrderService_Create(t *testing.T) {
	tests := []struct {
		name        string
		userID      uint64
		mutate      func(*OrderCreate)
		setupMocks  func(*mocks.MockOrderRepository)
		expectedErr error
	}{
		{
			name:        "missing user",
			userID:      0,
			mutate:      func(in *OrderCreate) {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "unknown order status",
			userID:      1,
			mutate:      func(in *OrderCreate) { in.OrderStatus = "lost" },
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "unknown payment method",
			userID:      1,
			mutate:      func(in *OrderCreate) { in.PaymentMethod = "cash" },
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "non-positive total",
			userID:      1,
			mutate:      func(in *OrderCreate) { in.TotalAmount = decimal.Zero },
			expectedErr: domain.ErrValidation,
		},
		{
			name:   "defaults order date and transaction id",
			userID: 1,
			mutate: func(in *OrderCreate) {},
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("Create", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 4
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}
			svc := NewOrderService(repo, nil)

			in := validOrderCreate()
			tt.mutate(&in)
			order, err := svc.Create(context.Background(), tt.userID, in)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(4), order.ID)
				assert.Equal(t, uint64(1), order.UserID)
				assert.False(t, order.OrderDate.IsZero())
				assert.NotEmpty(t, order.TransactionID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_Update_ScopedToUser(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("FindByUserAndID", uint64(2), uint64(4)).Return(nil, nil)
	svc := NewOrderService(repo, nil)

	order, err := svc.Update(2, 4, OrderPatch{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, order)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestOrderService_Update_PartialPatch(t *testing.T) {
	paid := domain.PaymentPaid
	now := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

	repo := new(mocks.MockOrderRepository)
	repo.On("FindByUserAndID", uint64(1), uint64(4)).Return(&domain.Order{
		ID:            4,
		UserID:        1,
		OrderStatus:   domain.OrderPending,
		PaymentStatus: domain.PaymentUnpaid,
		PaymentMethod: domain.PayPaypal,
		TotalAmount:   decimal.RequireFromString("250.00"),
		TransactionID: "txn-1",
	}, nil)
	repo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
	svc := NewOrderService(repo, nil)

	order, err := svc.Update(1, 4, OrderPatch{PaymentStatus: &paid, PaymentTime: &now})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, &now, order.PaymentTime)
	assert.Equal(t, domain.OrderPending, order.OrderStatus)
	assert.Equal(t, "txn-1", order.TransactionID)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("250.00")))
	repo.AssertExpectations(t)
}
