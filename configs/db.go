package configs

import (
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Coupon{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.ChatMessage{},
		&entity.Review{},
		&entity.Notification{},
	)
}
