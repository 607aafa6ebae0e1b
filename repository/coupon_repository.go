package repository

import (
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/gorm"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db}
}

func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	err := r.db.Where("code = ?", code).First(&c).Error
	return &c, err
}

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.db.Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.db.Create(c).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Coupon{}, id).Error
}

// IncrementUsageGuard burns one use; with a limit set it only succeeds
// while used_count is still below the limit.
func (r *CouponRepository) IncrementUsageGuard(tx *gorm.DB, couponID uint) (int64, error) {
	res := tx.Model(&entity.Coupon{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", couponID).
		Update("used_count", gorm.Expr("used_count + 1"))
	return res.RowsAffected, res.Error
}
