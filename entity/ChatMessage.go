package entity

import (
	"gorm.io/gorm"
)

// ChatMessage is one entry in an order's chat. At least one of
// Content/ImageURL/Location is present; rows are never updated or deleted.
type ChatMessage struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"` // hidden to avoid response loops

	SenderID   uint   `gorm:"not null" json:"senderId"`
	Sender     User   `json:"-"`
	SenderRole string `gorm:"size:20;not null" json:"senderRole"`

	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Location string `json:"location"` // "latitude,longitude"
}
