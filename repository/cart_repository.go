package repository

import (
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db}
}

// FindOrCreateByUser returns the user's cart, creating an empty one on
// first access.
func (r *CartRepository) FindOrCreateByUser(userID uint) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.Preload("Items.Product").
		Where("user_id = ?", userID).
		FirstOrCreate(&cart, entity.Cart{UserID: userID}).Error
	return &cart, err
}

func (r *CartRepository) FindItem(cartID, productID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	return &item, err
}

func (r *CartRepository) FindItemByID(cartID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error
	return &item, err
}

func (r *CartRepository) SaveItem(item *entity.CartItem) error {
	return r.db.Save(item).Error
}

func (r *CartRepository) DeleteItem(item *entity.CartItem) error {
	return r.db.Delete(item).Error
}

func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
