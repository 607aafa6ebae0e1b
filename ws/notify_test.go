package ws

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNotifyNewMessageTargetsRecipientOnly(t *testing.T) {
	reg := NewRegistry()
	n := NewNotifier(reg, zerolog.Nop())

	recipient, admin := &fakeSender{}, &fakeSender{}
	reg.Register("recipient", recipient)
	reg.Register("admin", admin)
	reg.Join("recipient", UserRoom(7))
	reg.Join("admin", AdminRoom)

	n.NotifyNewMessage(42, 7, "Admin", "your parcel shipped")

	if recipient.count() != 1 {
		t.Fatalf("recipient got %d events, want 1", recipient.count())
	}
	if admin.count() != 0 {
		t.Fatalf("admin room got %d events, want 0", admin.count())
	}

	evt := recipient.events[0]
	if evt.Kind != EventNewMessageNotification {
		t.Fatalf("kind = %s", evt.Kind)
	}
	var p NewMessagePayload
	if err := json.Unmarshal(evt.Data, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.OrderID != 42 || p.SenderName != "Admin" || p.Content != "your parcel shipped" {
		t.Errorf("payload = %+v", p)
	}
}

func TestNotifyAdminsNewMessage(t *testing.T) {
	reg := NewRegistry()
	n := NewNotifier(reg, zerolog.Nop())

	adm1, adm2 := &fakeSender{}, &fakeSender{}
	reg.Register("adm1", adm1)
	reg.Register("adm2", adm2)
	reg.Join("adm1", AdminRoom)
	reg.Join("adm2", AdminRoom)

	n.NotifyAdminsNewMessage(42, "Alice", "Where is my order?")

	if adm1.count() != 1 || adm2.count() != 1 {
		t.Fatalf("admins got %d/%d events, want 1/1", adm1.count(), adm2.count())
	}
}

func TestNotifyOfflineRecipientIsFine(t *testing.T) {
	reg := NewRegistry()
	n := NewNotifier(reg, zerolog.Nop())

	// nobody online; must not panic or error
	n.NotifyNewMessage(42, 7, "Admin", "hello")
	n.NotifyOrderStatus(7, "ORD-20260901-ABC123", "SHIPPED")
	n.NotifyAdminsOrderStatus("ORD-20260901-ABC123", "PENDING")
}

func TestNotifyOrderStatusPayload(t *testing.T) {
	reg := NewRegistry()
	n := NewNotifier(reg, zerolog.Nop())

	owner := &fakeSender{}
	reg.Register("owner", owner)
	reg.Join("owner", UserRoom(7))

	n.NotifyOrderStatus(7, "ORD-20260901-ABC123", "SHIPPED")

	if owner.count() != 1 {
		t.Fatalf("owner got %d events, want 1", owner.count())
	}
	evt := owner.events[0]
	if evt.Kind != EventOrderStatusUpdate {
		t.Fatalf("kind = %s", evt.Kind)
	}
	var p OrderStatusPayload
	if err := json.Unmarshal(evt.Data, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.OrderNumber != "ORD-20260901-ABC123" || p.Status != "SHIPPED" {
		t.Errorf("payload = %+v", p)
	}
}
