package repository

import (
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.First(&o, id).Error
	return &o, err
}

func (r *OrderRepository) FindDetail(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("Items.Product").Preload("User").First(&o, id).Error
	return &o, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll(status string) ([]entity.Order, error) {
	q := r.db.Preload("User").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips status only when the current value matches; the
// affected-row count tells the caller whether the transition won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// HasDeliveredProduct reports whether the user has a DELIVERED order
// containing the product (review eligibility).
func (r *OrderRepository) HasDeliveredProduct(userID, productID uint) (uint, error) {
	var item entity.OrderItem
	err := r.db.
		Where("product_id = ?", productID).
		Where("order_id IN (?)", r.db.Model(&entity.Order{}).Select("id").
			Where("user_id = ? AND status = ?", userID, entity.OrderDelivered)).
		First(&item).Error
	if err != nil {
		return 0, err
	}
	return item.OrderID, nil
}
