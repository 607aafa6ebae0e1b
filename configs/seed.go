package configs

import (
	"errors"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "admin@nashiecom.local")
	password := getEnv("ADMIN_PASSWORD", "admin1234")

	var existing entity.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: "Admin",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedCatalog inserts a starter set of categories so the storefront is not
// empty on first boot. Idempotent via FirstOrCreate.
func SeedCatalog() error {
	names := []string{"Electronics", "Fashion", "Home & Kitchen", "Groceries"}
	for _, name := range names {
		var cat entity.Category
		if err := db.Where("name = ?", name).FirstOrCreate(&cat, entity.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
