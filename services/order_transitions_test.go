package services

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Order{}, &entity.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewNotificationRepository(db),
		NewCouponService(repository.NewCouponRepository(db)),
		nil, // no realtime fan-out in these tests
	), db
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderPending, entity.OrderPaid, true},
		{entity.OrderPending, entity.OrderCancelled, true},
		{entity.OrderPending, entity.OrderShipped, false},
		{entity.OrderPaid, entity.OrderShipped, true},
		{entity.OrderPaid, entity.OrderCancelled, true},
		{entity.OrderShipped, entity.OrderDelivered, true},
		{entity.OrderShipped, entity.OrderCancelled, false},
		{entity.OrderDelivered, entity.OrderPending, false},
		{entity.OrderCancelled, entity.OrderPaid, false},
		{entity.OrderPending, entity.OrderPending, false},
	}
	for _, tt := range tests {
		if got := canTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, db := newTestOrderService(t)

	order := &entity.Order{
		OrderNumber: "ORD-20260901-TEST01",
		Status:      entity.OrderPending,
		UserID:      7,
		Total:       1000,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, entity.OrderPaid)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != entity.OrderPaid {
		t.Fatalf("status = %s, want PAID", updated.Status)
	}

	// durable notification row written for the owner
	var notifs []entity.Notification
	if err := db.Where("user_id = ?", 7).Find(&notifs).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	if len(notifs) != 1 || notifs[0].Kind != entity.NotificationOrderStatus {
		t.Fatalf("notifications = %+v, want one ORDER_STATUS_UPDATE", notifs)
	}

	// skipping states is rejected
	if _, err := svc.UpdateStatus(order.ID, entity.OrderDelivered); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("PAID->DELIVERED error = %v, want ErrInvalidTransition", err)
	}

	// terminal state
	if _, err := svc.UpdateStatus(order.ID, entity.OrderShipped); err != nil {
		t.Fatalf("PAID->SHIPPED error = %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, entity.OrderDelivered); err != nil {
		t.Fatalf("SHIPPED->DELIVERED error = %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, entity.OrderCancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("DELIVERED->CANCELLED error = %v, want ErrInvalidTransition", err)
	}
}
