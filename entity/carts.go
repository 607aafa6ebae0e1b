package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}
