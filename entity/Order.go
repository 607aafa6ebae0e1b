package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber     string `gorm:"size:32;uniqueIndex;not null" json:"orderNumber"`
	Status          string `gorm:"size:20;not null;default:PENDING" json:"status"`
	Subtotal        int64  `json:"subtotal"`
	Discount        int64  `json:"discount"`
	Total           int64  `json:"total"`
	ShippingAddress string `json:"shippingAddress"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"` // preload for detail only

	CouponID *uint   `json:"couponId"`
	Coupon   *Coupon `json:"-"`

	Items    []OrderItem   `gorm:"foreignKey:OrderID" json:"-"`
	Messages []ChatMessage `gorm:"foreignKey:OrderID" json:"-"`
	Reviews  []Review      `gorm:"foreignKey:OrderID" json:"-"`
}
