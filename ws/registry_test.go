package ws

import (
	"fmt"
	"sync"
	"testing"
)

type fakeSender struct {
	mu     sync.Mutex
	events []Event
}

func (f *fakeSender) Push(evt Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func TestRegistryJoinLeave(t *testing.T) {
	reg := NewRegistry()
	a := &fakeSender{}
	reg.Register("a", a)

	reg.Join("a", OrderRoom(42))
	reg.Join("a", UserRoom(7))

	if got := len(reg.RoomsOf("a")); got != 2 {
		t.Fatalf("RoomsOf = %d rooms, want 2", got)
	}
	if got := reg.MembersOf(OrderRoom(42)); len(got) != 1 || got[0] != "a" {
		t.Fatalf("MembersOf(order:42) = %v, want [a]", got)
	}

	reg.Leave("a", OrderRoom(42))
	if got := reg.MembersOf(OrderRoom(42)); len(got) != 0 {
		t.Fatalf("after leave, MembersOf = %v, want empty", got)
	}
	// leave is idempotent
	reg.Leave("a", OrderRoom(42))
}

func TestRegistryJoinWithoutRegister(t *testing.T) {
	reg := NewRegistry()
	reg.Join("ghost", OrderRoom(1))
	if got := reg.MembersOf(OrderRoom(1)); len(got) != 0 {
		t.Fatalf("unregistered conn joined a room: %v", got)
	}
}

func TestRegistryUnregisterTeardown(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", &fakeSender{})
	reg.Join("a", OrderRoom(42))
	reg.Join("a", UserRoom(7))
	reg.Join("a", AdminRoom)

	reg.Unregister("a")

	if got := reg.RoomsOf("a"); len(got) != 0 {
		t.Fatalf("RoomsOf after unregister = %v, want empty", got)
	}
	for _, room := range []RoomKey{OrderRoom(42), UserRoom(7), AdminRoom} {
		if got := reg.MembersOf(room); len(got) != 0 {
			t.Fatalf("MembersOf(%s) after unregister = %v, want empty", room, got)
		}
	}

	// idempotent
	reg.Unregister("a")
	reg.Unregister("never-registered")
}

func TestRegistryBroadcastFanOut(t *testing.T) {
	reg := NewRegistry()
	a, b, c := &fakeSender{}, &fakeSender{}, &fakeSender{}
	reg.Register("a", a)
	reg.Register("b", b)
	reg.Register("c", c)

	reg.Join("a", OrderRoom(42))
	reg.Join("b", OrderRoom(42))
	reg.Join("c", OrderRoom(99)) // different room

	evt, _ := NewEvent(EventReceiveMessage, map[string]any{"orderId": 42})
	if n := reg.Broadcast(OrderRoom(42), evt); n != 2 {
		t.Fatalf("Broadcast reached %d, want 2", n)
	}

	if a.count() != 1 || b.count() != 1 {
		t.Errorf("members got %d/%d events, want 1/1", a.count(), b.count())
	}
	if c.count() != 0 {
		t.Errorf("non-member got %d events, want 0", c.count())
	}
}

func TestRegistryBroadcastEmptyRoom(t *testing.T) {
	reg := NewRegistry()
	evt, _ := NewEvent(EventOrderStatusUpdate, OrderStatusPayload{})
	if n := reg.Broadcast(UserRoom(1), evt); n != 0 {
		t.Fatalf("empty room reached %d, want 0", n)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	evt, _ := NewEvent(EventReceiveMessage, map[string]any{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("conn-%d", i)
			reg.Register(id, &fakeSender{})
			reg.Join(id, OrderRoom(1))
			reg.Broadcast(OrderRoom(1), evt)
			reg.Leave(id, OrderRoom(1))
			reg.Unregister(id)
		}(i)
	}
	wg.Wait()

	if got := reg.MembersOf(OrderRoom(1)); len(got) != 0 {
		t.Fatalf("members left behind: %v", got)
	}
}
