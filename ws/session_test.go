package ws

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
)

func msgAt(id uint, at time.Time, content string) entity.ChatMessage {
	return entity.ChatMessage{
		Model:   gorm.Model{ID: id, CreatedAt: at},
		Content: content,
	}
}

func TestSessionDedupById(t *testing.T) {
	s := NewSession()
	now := time.Now()

	m := msgAt(1, now, "hello")
	if !s.Receive(m) {
		t.Fatal("first delivery not rendered")
	}
	// echo of own emission, or a duplicate push
	if s.Receive(m) {
		t.Fatal("duplicate id rendered twice")
	}
	if len(s.Messages()) != 1 {
		t.Fatalf("messages = %d, want 1", len(s.Messages()))
	}
}

func TestSessionHistoryMerge(t *testing.T) {
	s := NewSession()
	now := time.Now()

	// live message arrives before the REST history lands
	s.Receive(msgAt(3, now.Add(2*time.Second), "newest"))

	added := s.LoadHistory([]entity.ChatMessage{
		msgAt(1, now, "oldest"),
		msgAt(2, now.Add(time.Second), "middle"),
		msgAt(3, now.Add(2*time.Second), "newest"), // overlap
	})
	if added != 2 {
		t.Fatalf("history added %d, want 2", added)
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	for i, want := range []uint{1, 2, 3} {
		if msgs[i].ID != want {
			t.Errorf("messages[%d].ID = %d, want %d", i, msgs[i].ID, want)
		}
	}
}

func TestSessionOrderingTieBreakById(t *testing.T) {
	s := NewSession()
	at := time.Now()

	s.Receive(msgAt(5, at, "second"))
	s.Receive(msgAt(4, at, "first")) // same timestamp, lower id

	msgs := s.Messages()
	if msgs[0].ID != 4 || msgs[1].ID != 5 {
		t.Fatalf("tie-break order = [%d %d], want [4 5]", msgs[0].ID, msgs[1].ID)
	}
}

func TestSessionReconnectStateMachine(t *testing.T) {
	s := NewSession()
	if s.State() != StateDisconnected {
		t.Fatalf("initial state = %s", s.State())
	}

	s.Want(OrderRoom(42))
	s.Want(UserRoom(7))

	s.Connect()
	if s.State() != StateConnecting {
		t.Fatalf("after Connect state = %s", s.State())
	}

	rooms := s.Connected()
	if s.State() != StateJoined {
		t.Fatalf("after Connected state = %s", s.State())
	}
	if len(rooms) != 2 {
		t.Fatalf("rooms to join = %v, want 2", rooms)
	}

	// transport drops; wanted rooms must survive for the re-join
	s.Drop()
	if s.State() != StateDisconnected {
		t.Fatalf("after Drop state = %s", s.State())
	}

	s.Connect()
	rejoin := s.Connected()
	if len(rejoin) != 2 {
		t.Fatalf("re-join rooms = %v, want same 2", rejoin)
	}

	// a rejected re-join degrades but keeps the session alive
	s.Degrade()
	if s.State() != StateDegraded {
		t.Fatalf("after Degrade state = %s", s.State())
	}
}

func TestSessionConnectedOnlyFromConnecting(t *testing.T) {
	s := NewSession()
	s.Want(OrderRoom(1))
	if rooms := s.Connected(); rooms != nil {
		t.Fatalf("Connected while disconnected returned %v", rooms)
	}
}

func TestSessionForgetRoom(t *testing.T) {
	s := NewSession()
	s.Want(OrderRoom(42))
	s.Forget(OrderRoom(42)) // unmount leaves the room
	s.Connect()
	if rooms := s.Connected(); len(rooms) != 0 {
		t.Fatalf("forgotten room still wanted: %v", rooms)
	}
}

func TestSessionDraftRestoreOnFailedSend(t *testing.T) {
	s := NewSession()
	s.SetDraft("Where is my order?")

	text := s.SubmitDraft()
	if text != "Where is my order?" {
		t.Fatalf("SubmitDraft = %q", text)
	}
	if s.Draft() != "" {
		t.Fatal("compose box not cleared optimistically")
	}

	// persistence failed: nothing may be silently lost
	s.SendFailed(text)
	if s.Draft() != "Where is my order?" {
		t.Fatalf("draft after SendFailed = %q", s.Draft())
	}
}
