package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

type ShipmentRepository interface {
	Create(shipment *domain.Shipment) error
	FindByID(id uint64) (*domain.Shipment, error)
	FindAll() ([]domain.Shipment, error)
	Update(shipment *domain.Shipment) error
	Delete(id uint64) error
}
