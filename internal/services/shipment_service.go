package services

import (
	"fmt"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type ShipmentService struct {
	shipments repository.ShipmentRepository
}

func NewShipmentService(shipments repository.ShipmentRepository) *ShipmentService {
	return &ShipmentService{shipments: shipments}
}

type ShipmentCreate struct {
	ShippingMethod        string
	TrackingNumber        string
	CarrierName           string
	ShippingStatus        domain.ShipmentStatus
	ShippingCost          decimal.NullDecimal
	EstimatedDeliveryDate *time.Time
	HouseNo               string
	Street                string
	City                  string
	Pincode               string
	OrderID               uint64
}

func (s *ShipmentService) Create(in ShipmentCreate) (*domain.Shipment, error) {
	if in.ShippingMethod == "" {
		return nil, fmt.Errorf("%w: shippingMethod is required", domain.ErrValidation)
	}
	if in.HouseNo == "" || in.Street == "" || in.City == "" || in.Pincode == "" {
		return nil, fmt.Errorf("%w: shipping address is required", domain.ErrValidation)
	}
	if !validShipmentStatus(in.ShippingStatus) {
		return nil, fmt.Errorf("%w: unknown shippingStatus %q", domain.ErrValidation, in.ShippingStatus)
	}

	shipment := &domain.Shipment{
		ShippingMethod:        in.ShippingMethod,
		TrackingNumber:        in.TrackingNumber,
		CarrierName:           in.CarrierName,
		ShippingStatus:        in.ShippingStatus,
		ShippingCost:          in.ShippingCost,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
		HouseNo:               in.HouseNo,
		Street:                in.Street,
		City:                  in.City,
		Pincode:               in.Pincode,
		OrderID:               in.OrderID,
	}
	if err := s.shipments.Create(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) Get(id uint64) (*domain.Shipment, error) {
	shipment, err := s.shipments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, fmt.Errorf("%w: shipment %d", domain.ErrNotFound, id)
	}
	return shipment, nil
}

func (s *ShipmentService) List() ([]domain.Shipment, error) {
	return s.shipments.FindAll()
}

type ShipmentPatch struct {
	ShippingMethod        *string
	TrackingNumber        *string
	CarrierName           *string
	ShippingStatus        *domain.ShipmentStatus
	ShippingCost          *decimal.NullDecimal
	EstimatedDeliveryDate *time.Time
	HouseNo               *string
	Street                *string
	City                  *string
	Pincode               *string
	OrderID               *uint64
}

func (s *ShipmentService) Update(id uint64, patch ShipmentPatch) (*domain.Shipment, error) {
	shipment, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	applyString(&shipment.ShippingMethod, patch.ShippingMethod)
	applyString(&shipment.TrackingNumber, patch.TrackingNumber)
	applyString(&shipment.CarrierName, patch.CarrierName)
	if patch.ShippingStatus != nil {
		if !validShipmentStatus(*patch.ShippingStatus) {
			return nil, fmt.Errorf("%w: unknown shippingStatus %q", domain.ErrValidation, *patch.ShippingStatus)
		}
		shipment.ShippingStatus = *patch.ShippingStatus
	}
	if patch.ShippingCost != nil {
		shipment.ShippingCost = *patch.ShippingCost
	}
	if patch.EstimatedDeliveryDate != nil {
		shipment.EstimatedDeliveryDate = patch.EstimatedDeliveryDate
	}
	applyString(&shipment.HouseNo, patch.HouseNo)
	applyString(&shipment.Street, patch.Street)
	applyString(&shipment.City, patch.City)
	applyString(&shipment.Pincode, patch.Pincode)
	if patch.OrderID != nil {
		shipment.OrderID = *patch.OrderID
	}

	if err := s.shipments.Update(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) Delete(id uint64) error {
	return s.shipments.Delete(id)
}

func validShipmentStatus(v domain.ShipmentStatus) bool {
	switch v {
	case domain.ShipmentPending, domain.ShipmentShipped,
		domain.ShipmentInTransit, domain.ShipmentDelivered:
		return true
	}
	return false
}
