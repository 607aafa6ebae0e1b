package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"product"`

	// price is snapshotted at checkout time
	UnitPrice int64 `json:"unitPrice"`
	Quantity  int   `json:"quantity"`
}
