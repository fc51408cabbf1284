package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentShipped   ShipmentStatus = "shipped"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
)

type Shipment struct {
	ID                    uint64              `json:"shippingId" gorm:"primaryKey;autoIncrement"`
	ShippingMethod        string              `json:"shippingMethod" gorm:"size:255;not null"`
	TrackingNumber        string              `json:"trackingNumber" gorm:"size:255"`
	CarrierName           string              `json:"carrierName" gorm:"size:255"`
	ShippingStatus        ShipmentStatus      `json:"shippingStatus" gorm:"size:20;not null"`
	ShippingCost          decimal.NullDecimal `json:"shippingCost" gorm:"type:decimal(10,2)"`
	EstimatedDeliveryDate *time.Time          `json:"estimatedDeliveryDate"`
	HouseNo               string              `json:"houseFlatNo" gorm:"size:255;not null"`
	Street                string              `json:"street" gorm:"size:255;not null"`
	City                  string              `json:"city" gorm:"size:255;not null"`
	Pincode               string              `json:"pincode" gorm:"size:10;not null"`
	OrderID               uint64              `json:"orderId" gorm:"not null;index"`
}

func (Shipment) TableName() string { return "shipments" }
