package services

import (
	"strings"
	"time"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
	"gorm.io/gorm"
)

type CouponService struct {
	repo *repository.CouponRepository
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{repo}
}

// Preview validates a code against a subtotal and returns the discount it
// would grant, without burning a use.
func (s *CouponService) Preview(code string, subtotal int64) (int64, *entity.Coupon, error) {
	coupon, err := s.repo.FindByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return 0, nil, ErrCouponInvalid
	}
	if err := ValidateCoupon(coupon, subtotal); err != nil {
		return 0, nil, err
	}
	return CouponDiscount(coupon, subtotal), coupon, nil
}

// Redeem burns one use inside the checkout transaction. Zero rows affected
// means the limit was hit concurrently.
func (s *CouponService) Redeem(tx *gorm.DB, couponID uint) error {
	affected, err := s.repo.IncrementUsageGuard(tx, couponID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCouponInvalid
	}
	return nil
}

func (s *CouponService) List() ([]entity.Coupon, error) {
	return s.repo.List()
}

func (s *CouponService) Create(c *entity.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" || c.DiscountPct < 1 || c.DiscountPct > 100 {
		return ErrCouponInvalid
	}
	return s.repo.Create(c)
}

func (s *CouponService) Delete(id uint) error {
	return s.repo.Delete(id)
}

// ValidateCoupon checks expiry, minimum spend and usage limit.
func ValidateCoupon(c *entity.Coupon, subtotal int64) error {
	if !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt) {
		return ErrCouponInvalid
	}
	if subtotal < c.MinSpend {
		return ErrCouponInvalid
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return ErrCouponInvalid
	}
	return nil
}

func CouponDiscount(c *entity.Coupon, subtotal int64) int64 {
	return subtotal * int64(c.DiscountPct) / 100
}
