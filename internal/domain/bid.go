package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bid struct {
	ID           uint64          `json:"bidId" gorm:"primaryKey;autoIncrement"`
	Amount       decimal.Decimal `json:"bidAmount" gorm:"type:decimal(10,2);not null"`
	BidTime      time.Time       `json:"bidTime" gorm:"not null"`
	IsWinningBid bool            `json:"isWinningBid" gorm:"default:false"`
	UserID       uint64          `json:"userId" gorm:"not null;index"`
	ProductID    uint64          `json:"productId" gorm:"not null;index"`
}

func (Bid) TableName() string { return "bids" }
