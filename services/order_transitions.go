package services

import (
	"fmt"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/gorm"
)

// allowedTransitions is the order lifecycle. Anything not listed is
// rejected, including no-op transitions.
var allowedTransitions = map[string][]string{
	entity.OrderPending: {entity.OrderPaid, entity.OrderCancelled},
	entity.OrderPaid:    {entity.OrderShipped, entity.OrderCancelled},
	entity.OrderShipped: {entity.OrderDelivered},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves an order along the lifecycle. The DB-level guard
// makes concurrent transitions race safely: exactly one wins, the rest
// see ErrInvalidTransition. Every win writes a durable notification for
// the owner and fans out a transient order_status_update.
func (s *OrderService) UpdateStatus(orderID uint, to string) (*entity.Order, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(o.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.Status = to

	// durable first, transient push second; the push is best-effort
	notif := &entity.Notification{
		UserID:  o.UserID,
		Kind:    entity.NotificationOrderStatus,
		OrderID: o.ID,
		Title:   "Order " + o.OrderNumber,
		Body:    "Status changed to " + to,
	}
	_ = s.NotifRepo.Create(notif)

	if s.Notifier != nil {
		s.Notifier.NotifyOrderStatus(o.UserID, o.OrderNumber, to)
	}
	return o, nil
}
