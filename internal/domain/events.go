package domain

import "time"

// Events published to the broker after the owning transaction commits.

type BidPlacedEvent struct {
	BidID     uint64    `json:"bidId"`
	ProductID uint64    `json:"productId"`
	UserID    uint64    `json:"userId"`
	Amount    string    `json:"bidAmount"`
	BidTime   time.Time `json:"bidTime"`
}

type OrderCreatedEvent struct {
	OrderID       uint64    `json:"orderId"`
	ProductID     uint64    `json:"productId"`
	UserID        uint64    `json:"userId"`
	TotalAmount   string    `json:"totalAmount"`
	TransactionID string    `json:"transactionId"`
	OrderDate     time.Time `json:"orderDate"`
}
