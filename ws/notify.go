package ws

import (
	"github.com/rs/zerolog"
)

// Notifier pushes transient notification events. Every call is
// fire-and-forget: an empty room is the normal case (the recipient is
// offline), and the durable notification row covers eventual visibility.
type Notifier struct {
	registry *Registry
	log      zerolog.Logger
}

func NewNotifier(registry *Registry, log zerolog.Logger) *Notifier {
	return &Notifier{registry: registry, log: log}
}

// NotifyNewMessage tells one user that an order chat has a new message.
func (n *Notifier) NotifyNewMessage(orderID, recipientUserID uint, senderName, content string) {
	n.push(UserRoom(recipientUserID), EventNewMessageNotification, NewMessagePayload{
		OrderID:    orderID,
		SenderName: senderName,
		Content:    content,
	})
}

// NotifyAdminsNewMessage tells the admin channel a customer wrote in.
func (n *Notifier) NotifyAdminsNewMessage(orderID uint, senderName, content string) {
	n.push(AdminRoom, EventNewMessageNotification, NewMessagePayload{
		OrderID:    orderID,
		SenderName: senderName,
		Content:    content,
	})
}

// NotifyOrderStatus tells the order's owner about a status transition.
func (n *Notifier) NotifyOrderStatus(ownerUserID uint, orderNumber, status string) {
	n.push(UserRoom(ownerUserID), EventOrderStatusUpdate, OrderStatusPayload{
		OrderNumber: orderNumber,
		Status:      status,
	})
}

// NotifyAdminsOrderStatus announces a transition on the admin channel
// (new orders land here as PENDING).
func (n *Notifier) NotifyAdminsOrderStatus(orderNumber, status string) {
	n.push(AdminRoom, EventOrderStatusUpdate, OrderStatusPayload{
		OrderNumber: orderNumber,
		Status:      status,
	})
}

func (n *Notifier) push(room RoomKey, kind EventKind, payload any) {
	evt, err := NewEvent(kind, payload)
	if err != nil {
		n.log.Error().Err(err).Str("room", string(room)).Msg("encode notification failed")
		return
	}
	delivered := n.registry.Broadcast(room, evt)
	n.log.Debug().
		Str("room", string(room)).
		Str("event", string(kind)).
		Int("receivers", delivered).
		Msg("notification pushed")
}
