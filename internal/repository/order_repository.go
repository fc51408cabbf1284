package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

type OrderRepository interface {
	Create(order *domain.Order) error
	FindByUserID(userID uint64) ([]domain.Order, error)
	// FindByUserAndID scopes the lookup to the owning user; an order id that
	// belongs to someone else reads as missing.
	FindByUserAndID(userID, orderID uint64) (*domain.Order, error)
	Update(order *domain.Order) error
	// Delete removes the order and its shipment in one transaction.
	Delete(userID, orderID uint64) error
}
