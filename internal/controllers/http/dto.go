package http

import (
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Phone      string `json:"phone"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	HouseNo    string `json:"houseFlatNo"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`
	IsVerified bool   `json:"isVerified"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserUpdateRequest struct {
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	HouseNo    *string `json:"houseFlatNo"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Pincode    *string `json:"pincode"`
	IsVerified *bool   `json:"isVerified"`
}

type ProductCreateRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Condition   string          `json:"condition" binding:"required"`
	InitialBid  decimal.Decimal `json:"initialBid" binding:"required"`
	Status      string          `json:"status"`
	StartTime   time.Time       `json:"startTime" binding:"required"`
	EndTime     time.Time       `json:"endTime" binding:"required"`
	UserID      uint64          `json:"userId" binding:"required"`
	CategoryID  uint64          `json:"categoryId" binding:"required"`
	Images      []string        `json:"images"`
}

type ProductUpdateRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Condition   *string          `json:"condition"`
	InitialBid  *decimal.Decimal `json:"initialBid"`
	Status      *string          `json:"status"`
	StartTime   *time.Time       `json:"startTime"`
	EndTime     *time.Time       `json:"endTime"`
	Images      []string         `json:"images"`
}

type CategoryCreateRequest struct {
	CategoryName string `json:"categoryName" binding:"required"`
}

type CategoryUpdateRequest struct {
	CategoryName *string `json:"categoryName"`
}

type BidCreateRequest struct {
	BidAmount decimal.Decimal `json:"bidAmount" binding:"required"`
	BidTime   time.Time       `json:"bidTime"`
	UserID    uint64          `json:"userId" binding:"required"`
	ProductID uint64          `json:"productId" binding:"required"`
}

type OrderCreateRequest struct {
	OrderDate     time.Time            `json:"orderDate"`
	OrderStatus   domain.OrderStatus   `json:"orderStatus" binding:"required"`
	PaymentTime   *time.Time           `json:"paymentTime"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus" binding:"required"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	TotalAmount   decimal.Decimal      `json:"totalAmount" binding:"required"`
	TransactionID string               `json:"transactionId"`
	ProductID     uint64               `json:"productId" binding:"required"`
}

type OrderUpdateRequest struct {
	OrderStatus   *domain.OrderStatus   `json:"orderStatus"`
	PaymentTime   *time.Time            `json:"paymentTime"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod"`
	TotalAmount   *decimal.Decimal      `json:"totalAmount"`
	TransactionID *string               `json:"transactionId"`
	ProductID     *uint64               `json:"productId"`
}

type ShipmentCreateRequest struct {
	ShippingMethod        string                `json:"shippingMethod" binding:"required"`
	TrackingNumber        string                `json:"trackingNumber"`
	CarrierName           string                `json:"carrierName"`
	ShippingStatus        domain.ShipmentStatus `json:"shippingStatus" binding:"required"`
	ShippingCost          decimal.NullDecimal   `json:"shippingCost"`
	EstimatedDeliveryDate *time.Time            `json:"estimatedDeliveryDate"`
	HouseNo               string                `json:"houseFlatNo" binding:"required"`
	Street                string                `json:"street" binding:"required"`
	City                  string                `json:"city" binding:"required"`
	Pincode               string                `json:"pincode" binding:"required"`
	OrderID               uint64                `json:"orderId"`
}

type ShipmentUpdateRequest struct {
	ShippingMethod        *string                `json:"shippingMethod"`
	TrackingNumber        *string                `json:"trackingNumber"`
	CarrierName           *string                `json:"carrierName"`
	ShippingStatus        *domain.ShipmentStatus `json:"shippingStatus"`
	ShippingCost          *decimal.NullDecimal   `json:"shippingCost"`
	EstimatedDeliveryDate *time.Time             `json:"estimatedDeliveryDate"`
	HouseNo               *string                `json:"houseFlatNo"`
	Street                *string                `json:"street"`
	City                  *string                `json:"city"`
	Pincode               *string                `json:"pincode"`
	OrderID               *uint64                `json:"orderId"`
}

type ReviewCreateRequest struct {
	Rating     int       `json:"rating" binding:"required"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate"`
	ProductID  uint64    `json:"productId" binding:"required"`
	UserID     uint64    `json:"userId" binding:"required"`
}

type ReviewUpdateRequest struct {
	Rating     *int       `json:"rating"`
	Comment    *string    `json:"comment"`
	ReviewDate *time.Time `json:"reviewDate"`
}

type MessageCreateRequest struct {
	SentTime   time.Time  `json:"sentTime"`
	ReadTime   *time.Time `json:"readTime"`
	Content    string     `json:"messageContent" binding:"required"`
	ProductID  *uint64    `json:"productId"`
	SellerID   uint64     `json:"sellerId" binding:"required"`
	ReceiverID uint64     `json:"receiverId" binding:"required"`
}

type MessageUpdateRequest struct {
	ReadTime *time.Time `json:"readTime"`
	Content  *string    `json:"messageContent"`
}
