package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	Orders        []Order        `json:"-"`
	Reviews       []Review       `json:"-"`
	MessagesSent  []ChatMessage  `gorm:"foreignKey:SenderID" json:"-"`
	Notifications []Notification `json:"-"`
	Cart          *Cart          `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
