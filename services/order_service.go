package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
	"github.com/muhwezim78/Nashiecom-sub000/ws"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	NotifRepo *repository.NotificationRepository
	Coupons   *CouponService
	Notifier  *ws.Notifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, notifRepo *repository.NotificationRepository, coupons *CouponService, notifier *ws.Notifier) *OrderService {
	return &OrderService{
		DB:        db,
		Repo:      repo,
		CartRepo:  cartRepo,
		NotifRepo: notifRepo,
		Coupons:   coupons,
		Notifier:  notifier,
	}
}

// OwnerOf resolves the order's owning customer, used by the realtime
// router for join authorization.
func (s *OrderService) OwnerOf(orderID uint) (uint, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		return 0, err
	}
	return o.UserID, nil
}

// Checkout turns the user's cart into a PENDING order in one transaction:
// guarded stock decrements, coupon redemption, snapshotted prices, cart
// cleared. The admin channel hears about the new order afterwards.
func (s *OrderService) Checkout(userID uint, address, couponCode string) (*entity.Order, error) {
	var order *entity.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cart entity.Cart
		if err := tx.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return ErrEmptyCart
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		var subtotal int64
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			res := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ?", it.ProductID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %d", ErrOutOfStock, it.ProductID)
			}
			subtotal += it.Product.Price * int64(it.Quantity)
			items = append(items, entity.OrderItem{
				ProductID: it.ProductID,
				UnitPrice: it.Product.Price,
				Quantity:  it.Quantity,
			})
		}

		var discount int64
		var couponID *uint
		if couponCode != "" {
			amount, coupon, err := s.Coupons.Preview(couponCode, subtotal)
			if err != nil {
				return err
			}
			if err := s.Coupons.Redeem(tx, coupon.ID); err != nil {
				return err
			}
			discount = amount
			couponID = &coupon.ID
		}

		order = &entity.Order{
			OrderNumber:     newOrderNumber(),
			Status:          entity.OrderPending,
			Subtotal:        subtotal,
			Discount:        discount,
			Total:           subtotal - discount,
			ShippingAddress: address,
			UserID:          userID,
			CouponID:        couponID,
			Items:           items,
		}
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}

		return s.CartRepo.ClearItems(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyAdminsOrderStatus(order.OrderNumber, order.Status)
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

func (s *OrderService) ListAll(status string) ([]entity.Order, error) {
	return s.Repo.ListAll(status)
}

// Detail returns an order to its owner or to an admin.
func (s *OrderService) Detail(orderID, userID uint, role string) (*entity.Order, error) {
	o, err := s.Repo.FindDetail(orderID)
	if err != nil {
		return nil, err
	}
	if role != entity.RoleAdmin && o.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func newOrderNumber() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}
