package domain

import "time"

type Message struct {
	ID         uint64     `json:"messageId" gorm:"primaryKey;autoIncrement"`
	SentTime   time.Time  `json:"sentTime" gorm:"not null"`
	ReadTime   *time.Time `json:"readTime"`
	Content    string     `json:"messageContent" gorm:"type:text;not null"`
	ProductID  *uint64    `json:"productId" gorm:"index"`
	SellerID   uint64     `json:"sellerId" gorm:"not null;index"`
	ReceiverID uint64     `json:"receiverId" gorm:"not null;index"`
}

func (Message) TableName() string { return "messages" }
