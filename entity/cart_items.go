package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index;not null" json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"product"`

	Quantity int `gorm:"not null" json:"quantity"`
}
