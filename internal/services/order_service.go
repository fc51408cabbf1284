package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/infra/rabbitmq"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orders    repository.OrderRepository
	publisher rabbitmq.PublisherInterface
}

func NewOrderService(orders repository.OrderRepository, publisher rabbitmq.PublisherInterface) *OrderService {
	return &OrderService{orders: orders, publisher: publisher}
}

type OrderCreate struct {
	OrderDate     time.Time
	OrderStatus   domain.OrderStatus
	PaymentTime   *time.Time
	PaymentStatus domain.PaymentStatus
	PaymentMethod domain.PaymentMethod
	TotalAmount   decimal.Decimal
	TransactionID string
	ProductID     uint64
}

func (s *OrderService) Create(ctx context.Context, userID uint64, in OrderCreate) (*domain.Order, error) {
	if userID == 0 || in.ProductID == 0 {
		return nil, fmt.Errorf("%w: userId and productId are required", domain.ErrValidation)
	}
	if !validOrderStatus(in.OrderStatus) {
		return nil, fmt.Errorf("%w: unknown orderStatus %q", domain.ErrValidation, in.OrderStatus)
	}
	if !validPaymentStatus(in.PaymentStatus) {
		return nil, fmt.Errorf("%w: unknown paymentStatus %q", domain.ErrValidation, in.PaymentStatus)
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown paymentMethod %q", domain.ErrValidation, in.PaymentMethod)
	}
	if in.TotalAmount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: totalAmount must be positive", domain.ErrValidation)
	}
	if in.OrderDate.IsZero() {
		in.OrderDate = time.Now()
	}
	if in.TransactionID == "" {
		in.TransactionID = uuid.NewString()
	}

	order := &domain.Order{
		OrderDate:     in.OrderDate,
		OrderStatus:   in.OrderStatus,
		PaymentTime:   in.PaymentTime,
		PaymentStatus: in.PaymentStatus,
		PaymentMethod: in.PaymentMethod,
		TotalAmount:   in.TotalAmount,
		TransactionID: in.TransactionID,
		UserID:        userID,
		ProductID:     in.ProductID,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderCreatedEvent{
		OrderID:       order.ID,
		ProductID:     order.ProductID,
		UserID:        order.UserID,
		TotalAmount:   order.TotalAmount.StringFixed(2),
		TransactionID: order.TransactionID,
		OrderDate:     order.OrderDate,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created: %v", err)
	}
}

func (s *OrderService) ListForUser(userID uint64) ([]domain.Order, error) {
	return s.orders.FindByUserID(userID)
}

type OrderPatch struct {
	OrderStatus   *domain.OrderStatus
	PaymentTime   *time.Time
	PaymentStatus *domain.PaymentStatus
	PaymentMethod *domain.PaymentMethod
	TotalAmount   *decimal.Decimal
	TransactionID *string
	ProductID     *uint64
}

func (s *OrderService) Update(userID, orderID uint64, patch OrderPatch) (*domain.Order, error) {
	order, err := s.orders.FindByUserAndID(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d for user %d", domain.ErrNotFound, orderID, userID)
	}

	if patch.OrderStatus != nil {
		if !validOrderStatus(*patch.OrderStatus) {
			return nil, fmt.Errorf("%w: unknown orderStatus %q", domain.ErrValidation, *patch.OrderStatus)
		}
		order.OrderStatus = *patch.OrderStatus
	}
	if patch.PaymentTime != nil {
		order.PaymentTime = patch.PaymentTime
	}
	if patch.PaymentStatus != nil {
		if !validPaymentStatus(*patch.PaymentStatus) {
			return nil, fmt.Errorf("%w: unknown paymentStatus %q", domain.ErrValidation, *patch.PaymentStatus)
		}
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		if !validPaymentMethod(*patch.PaymentMethod) {
			return nil, fmt.Errorf("%w: unknown paymentMethod %q", domain.ErrValidation, *patch.PaymentMethod)
		}
		order.PaymentMethod = *patch.PaymentMethod
	}
	if patch.TotalAmount != nil {
		order.TotalAmount = *patch.TotalAmount
	}
	applyString(&order.TransactionID, patch.TransactionID)
	if patch.ProductID != nil {
		order.ProductID = *patch.ProductID
	}

	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Delete(userID, orderID uint64) error {
	return s.orders.Delete(userID, orderID)
}

func validOrderStatus(v domain.OrderStatus) bool {
	switch v {
	case domain.OrderPending, domain.OrderConfirmed, domain.OrderShipped,
		domain.OrderDelivered, domain.OrderCancelled:
		return true
	}
	return false
}

func validPaymentStatus(v domain.PaymentStatus) bool {
	switch v {
	case domain.PaymentUnpaid, domain.PaymentPaid:
		return true
	}
	return false
}

func validPaymentMethod(v domain.PaymentMethod) bool {
	switch v {
	case domain.PayCreditCard, domain.PayDebitCard, domain.PayPaypal, domain.PayBankTransfer:
		return true
	}
	return false
}
