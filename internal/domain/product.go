package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductCondition string

const (
	ConditionNew         ProductCondition = "new"
	ConditionUsed        ProductCondition = "used"
	ConditionRefurbished ProductCondition = "refurbished"
)

type ProductStatus string

const (
	ProductActive  ProductStatus = "active"
	ProductSold    ProductStatus = "sold"
	ProductExpired ProductStatus = "expired"
)

type Product struct {
	ID              uint64              `json:"productId" gorm:"primaryKey;autoIncrement"`
	Title           string              `json:"title" gorm:"size:255;not null"`
	Description     string              `json:"description" gorm:"type:text"`
	Condition       ProductCondition    `json:"condition" gorm:"size:20;not null"`
	InitialBid      decimal.Decimal     `json:"initialBid" gorm:"type:decimal(10,2);not null"`
	CurrentBidPrice decimal.NullDecimal `json:"currentBidPrice" gorm:"type:decimal(10,2)"`
	Status          ProductStatus       `json:"status" gorm:"size:20;not null;index"`
	StartTime       time.Time           `json:"startTime" gorm:"not null"`
	EndTime         time.Time           `json:"endTime" gorm:"not null"`
	UserID          uint64              `json:"userId" gorm:"not null;index"`

	Images     []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	Categories []Category     `json:"-" gorm:"many2many:category_products"`
}

func (Product) TableName() string { return "products" }

type ProductImage struct {
	ID        uint64 `json:"imageId" gorm:"primaryKey;autoIncrement"`
	ProductID uint64 `json:"productId" gorm:"not null;index"`
	ImageURL  string `json:"imageURL" gorm:"size:255;not null"`
}

func (ProductImage) TableName() string { return "product_images" }
