package domain

type Category struct {
	ID   uint64 `json:"categoryId" gorm:"primaryKey;autoIncrement"`
	Name string `json:"categoryName" gorm:"size:255;not null"`
}

func (Category) TableName() string { return "categories" }
