package domain

import "time"

type Review struct {
	ID         uint64    `json:"reviewId" gorm:"primaryKey;autoIncrement"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text"`
	ReviewDate time.Time `json:"reviewDate" gorm:"not null"`
	ProductID  uint64    `json:"productId" gorm:"not null;index"`
	UserID     uint64    `json:"userId" gorm:"not null;index"`
}

func (Review) TableName() string { return "reviews" }
