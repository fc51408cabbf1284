package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PayCreditCard   PaymentMethod = "credit_card"
	PayDebitCard    PaymentMethod = "debit_card"
	PayPaypal       PaymentMethod = "paypal"
	PayBankTransfer PaymentMethod = "bank_transfer"
)

type Order struct {
	ID            uint64          `json:"orderId" gorm:"primaryKey;autoIncrement"`
	OrderDate     time.Time       `json:"orderDate" gorm:"not null"`
	OrderStatus   OrderStatus     `json:"orderStatus" gorm:"size:20;not null"`
	PaymentTime   *time.Time      `json:"paymentTime"`
	PaymentStatus PaymentStatus   `json:"paymentStatus" gorm:"size:20;not null"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" gorm:"size:20;not null"`
	TotalAmount   decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2);not null"`
	TransactionID string          `json:"transactionId" gorm:"size:255"`
	UserID        uint64          `json:"userId" gorm:"not null;index"`
	ProductID     uint64          `json:"productId" gorm:"not null;index"`
}

func (Order) TableName() string { return "orders" }
