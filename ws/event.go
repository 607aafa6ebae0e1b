package ws

import (
	"encoding/json"
	"fmt"
)

// EventKind is the closed set of frame types on the socket. Both sides
// switch on it; anything else is dropped with an error frame.
type EventKind string

const (
	// client -> server
	EventJoinOrderChat          EventKind = "join_order_chat"
	EventJoinUserNotifications  EventKind = "join_user_notifications"
	EventJoinAdminNotifications EventKind = "join_admin_notifications"
	EventLeaveRoom              EventKind = "leave_room"
	EventSendMessage            EventKind = "send_message"

	// server -> client
	EventReceiveMessage         EventKind = "receive_message"
	EventNewMessageNotification EventKind = "new_message_notification"
	EventOrderStatusUpdate      EventKind = "order_status_update"
	EventError                  EventKind = "error"
)

// Event is the wire envelope: {"event": "...", "data": {...}}.
type Event struct {
	Kind EventKind       `json:"event"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEvent wraps a payload into an envelope.
func NewEvent(kind EventKind, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	return Event{Kind: kind, Data: data}, nil
}

// Inbound payloads.

type JoinOrderChatPayload struct {
	OrderID uint `json:"orderId"`
}

type JoinUserNotificationsPayload struct {
	UserID uint `json:"userId"`
}

type LeaveRoomPayload struct {
	Room RoomKey `json:"room"`
}

type SendMessagePayload struct {
	OrderID  uint   `json:"orderId"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Location string `json:"location"`
}

// Outbound payloads.

type NewMessagePayload struct {
	OrderID    uint   `json:"orderId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
}

type OrderStatusPayload struct {
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
