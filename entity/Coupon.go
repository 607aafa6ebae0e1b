package entity

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Code        string    `gorm:"size:40;uniqueIndex;not null" json:"code"`
	DiscountPct int       `json:"discountPct"` // 1..100
	MinSpend    int64     `json:"minSpend"`
	UsageLimit  int       `json:"usageLimit"` // 0 = unlimited
	UsedCount   int       `json:"usedCount"`
	ExpiresAt   time.Time `json:"expiresAt"`

	Orders []Order `gorm:"foreignKey:CouponID" json:"-"`
}
