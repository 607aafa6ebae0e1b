package ws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
)

type fakeStore struct {
	saveErr error
	nextID  uint
	saved   []*entity.ChatMessage
}

func (f *fakeStore) SaveMessage(ctx context.Context, orderID uint, sender Identity, d Draft) (*entity.ChatMessage, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.nextID++
	msg := &entity.ChatMessage{
		Model:      gorm.Model{ID: f.nextID, CreatedAt: time.Now()},
		OrderID:    orderID,
		SenderID:   sender.UserID,
		SenderRole: sender.Role,
		Content:    d.Content,
		ImageURL:   d.ImageURL,
		Location:   d.Location,
	}
	f.saved = append(f.saved, msg)
	return msg, nil
}

func decodeMessage(t *testing.T, evt Event) entity.ChatMessage {
	t.Helper()
	if evt.Kind != EventReceiveMessage {
		t.Fatalf("event kind = %s, want %s", evt.Kind, EventReceiveMessage)
	}
	var msg entity.ChatMessage
	if err := json.Unmarshal(evt.Data, &msg); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return msg
}

func TestSendMessageEmptyDraft(t *testing.T) {
	reg := NewRegistry()
	store := &fakeStore{}
	relay := NewRelay(reg, store, zerolog.Nop())

	a := &fakeSender{}
	reg.Register("a", a)
	reg.Join("a", OrderRoom(42))

	_, err := relay.SendMessage(context.Background(), 42, Identity{UserID: 7}, Draft{})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("error = %v, want ErrEmptyMessage", err)
	}
	if len(store.saved) != 0 {
		t.Error("empty draft was persisted")
	}
	if a.count() != 0 {
		t.Error("empty draft was broadcast")
	}
}

func TestSendMessagePersistenceFailure(t *testing.T) {
	reg := NewRegistry()
	store := &fakeStore{saveErr: errors.New("db down")}
	relay := NewRelay(reg, store, zerolog.Nop())

	a := &fakeSender{}
	reg.Register("a", a)
	reg.Join("a", OrderRoom(42))

	_, err := relay.SendMessage(context.Background(), 42, Identity{UserID: 7}, Draft{Content: "hi"})
	if !errors.Is(err, ErrPersistenceFailed) {
		t.Fatalf("error = %v, want ErrPersistenceFailed", err)
	}
	if a.count() != 0 {
		t.Error("broadcast happened despite persistence failure")
	}
}

func TestSendMessageFanOutCompleteness(t *testing.T) {
	reg := NewRegistry()
	store := &fakeStore{}
	relay := NewRelay(reg, store, zerolog.Nop())

	// A, B and sender C are all members of order:42
	a, b, c := &fakeSender{}, &fakeSender{}, &fakeSender{}
	for id, s := range map[string]*fakeSender{"a": a, "b": b, "c": c} {
		reg.Register(id, s)
		reg.Join(id, OrderRoom(42))
	}

	msg, err := relay.SendMessage(context.Background(), 42,
		Identity{UserID: 7, Role: entity.RoleCustomer}, Draft{Content: "Where is my order?"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if msg.ID == 0 || msg.CreatedAt.IsZero() {
		t.Fatalf("persisted message missing id/createdAt: %+v", msg)
	}

	// everyone receives it, sender included; dedup is the client's job
	for name, s := range map[string]*fakeSender{"a": a, "b": b, "c": c} {
		if s.count() != 1 {
			t.Fatalf("%s received %d events, want 1", name, s.count())
		}
		got := decodeMessage(t, s.events[0])
		if got.ID != msg.ID {
			t.Errorf("%s got message id %d, want %d", name, got.ID, msg.ID)
		}
		if got.Content != "Where is my order?" {
			t.Errorf("%s got content %q", name, got.Content)
		}
	}
}

func TestSendMessageLocationOnly(t *testing.T) {
	reg := NewRegistry()
	store := &fakeStore{}
	relay := NewRelay(reg, store, zerolog.Nop())

	a := &fakeSender{}
	reg.Register("a", a)
	reg.Join("a", OrderRoom(42))

	msg, err := relay.SendMessage(context.Background(), 42,
		Identity{UserID: 7, Role: entity.RoleCustomer}, Draft{Location: "0.3143,32.5751"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if msg.Location != "0.3143,32.5751" || msg.Content != "" || msg.ImageURL != "" {
		t.Fatalf("location message = %+v", msg)
	}

	got := decodeMessage(t, a.events[0])
	if got.Location != "0.3143,32.5751" {
		t.Errorf("broadcast location = %q", got.Location)
	}
}

func TestSendMessageSequentialOrdering(t *testing.T) {
	reg := NewRegistry()
	store := &fakeStore{}
	relay := NewRelay(reg, store, zerolog.Nop())

	a := &fakeSender{}
	reg.Register("a", a)
	reg.Join("a", OrderRoom(42))

	sender := Identity{UserID: 7, Role: entity.RoleCustomer}
	m1, _ := relay.SendMessage(context.Background(), 42, sender, Draft{Content: "first"})
	m2, _ := relay.SendMessage(context.Background(), 42, sender, Draft{Content: "second"})

	// M2 submitted after M1's persistence completed: broadcast order follows
	if a.count() != 2 {
		t.Fatalf("received %d events, want 2", a.count())
	}
	if got := decodeMessage(t, a.events[0]); got.ID != m1.ID {
		t.Errorf("first broadcast id = %d, want %d", got.ID, m1.ID)
	}
	if got := decodeMessage(t, a.events[1]); got.ID != m2.ID {
		t.Errorf("second broadcast id = %d, want %d", got.ID, m2.ID)
	}
}
