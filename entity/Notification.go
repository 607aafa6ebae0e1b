package entity

import (
	"gorm.io/gorm"
)

const (
	NotificationNewMessage  = "NEW_MESSAGE"
	NotificationOrderStatus = "ORDER_STATUS_UPDATE"
)

// Notification is the durable record behind the transient realtime push.
// A user who was offline sees these on next page load.
type Notification struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Kind    string `gorm:"size:30;not null" json:"kind"`
	OrderID uint   `json:"orderId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}
