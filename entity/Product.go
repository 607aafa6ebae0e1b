package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents, never float
	Stock       int    `json:"stock"`
	ImageURL    string `json:"imageUrl"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	Reviews []Review `json:"-"`
}
