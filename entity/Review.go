package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `json:"comment"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"index;not null" json:"productId"`
	Product   Product `json:"-"`

	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`
}
