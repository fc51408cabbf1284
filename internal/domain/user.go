package domain

import "time"

type User struct {
	ID         uint64    `json:"userId" gorm:"primaryKey;autoIncrement"`
	Username   string    `json:"username" gorm:"size:255;not null;uniqueIndex"`
	Phone      string    `json:"phone" gorm:"size:15"`
	Email      string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswdHash string    `json:"-" gorm:"size:255;not null"`
	FirstName  string    `json:"firstName" gorm:"size:255;not null"`
	LastName   string    `json:"lastName" gorm:"size:255;not null"`
	HouseNo    string    `json:"houseFlatNo" gorm:"size:255"`
	Street     string    `json:"street" gorm:"size:255"`
	City       string    `json:"city" gorm:"size:255"`
	Pincode    string    `json:"pincode" gorm:"size:10"`
	DateJoined time.Time `json:"dateJoined" gorm:"not null"`
	IsVerified bool      `json:"isVerified" gorm:"default:false"`
}

func (User) TableName() string { return "users" }
