package ws

import (
	"sort"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
)

// SessionState is the connection lifecycle a browser tab moves through.
type SessionState int

const (
	StateDisconnected SessionState = iota
	StateConnecting
	StateJoined
	StateDegraded
)

func (s SessionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateJoined:
		return "joined"
	case StateDegraded:
		return "degraded"
	}
	return "unknown"
}

// Session is the client-side adapter contract as an explicit state
// machine: which rooms a tab wants, which messages it has rendered, and
// what happens on drop/reconnect. It is pure state, no transport, so the
// reconnect and dedup invariants are unit-testable.
//
// There is no server-side session resumption: after a drop the wanted
// rooms survive here and every join is re-issued on reconnect.
type Session struct {
	state    SessionState
	wanted   map[RoomKey]struct{}
	seen     map[uint]struct{}
	messages []entity.ChatMessage
	draft    string
}

func NewSession() *Session {
	return &Session{
		state:  StateDisconnected,
		wanted: make(map[RoomKey]struct{}),
		seen:   make(map[uint]struct{}),
	}
}

func (s *Session) State() SessionState { return s.state }

// Want records a room to join on every (re)connect.
func (s *Session) Want(room RoomKey) {
	s.wanted[room] = struct{}{}
}

// Forget drops a room from the wanted set (explicit leave on unmount).
func (s *Session) Forget(room RoomKey) {
	delete(s.wanted, room)
}

// Connect starts a connection attempt.
func (s *Session) Connect() {
	if s.state == StateDisconnected {
		s.state = StateConnecting
	}
}

// Connected is the transport-open callback; it returns the rooms whose
// joins must now be issued, in a stable order.
func (s *Session) Connected() []RoomKey {
	if s.state != StateConnecting {
		return nil
	}
	s.state = StateJoined
	rooms := make([]RoomKey, 0, len(s.wanted))
	for room := range s.wanted {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
	return rooms
}

// Degrade marks the session as connected but not fully joined (a re-join
// was rejected). The tab stays usable for the rooms that did join.
func (s *Session) Degrade() {
	if s.state == StateJoined {
		s.state = StateDegraded
	}
}

// Drop is the transport-close callback. Wanted rooms and rendered message
// ids survive so a reconnect re-joins and still dedups history overlap.
func (s *Session) Drop() {
	s.state = StateDisconnected
}

// Receive appends a message to the rendered list unless its id was seen
// before. Returns whether the message was newly rendered.
func (s *Session) Receive(msg entity.ChatMessage) bool {
	if _, dup := s.seen[msg.ID]; dup {
		return false
	}
	s.seen[msg.ID] = struct{}{}
	s.messages = append(s.messages, msg)
	s.sortMessages()
	return true
}

// LoadHistory merges a REST history fetch, deduplicating against anything
// already rendered live.
func (s *Session) LoadHistory(msgs []entity.ChatMessage) int {
	added := 0
	for _, m := range msgs {
		if _, dup := s.seen[m.ID]; dup {
			continue
		}
		s.seen[m.ID] = struct{}{}
		s.messages = append(s.messages, m)
		added++
	}
	if added > 0 {
		s.sortMessages()
	}
	return added
}

// Messages returns the rendered list in display order.
func (s *Session) Messages() []entity.ChatMessage {
	return s.messages
}

// SubmitDraft optimistically clears the compose box and returns the text
// to send.
func (s *Session) SubmitDraft() string {
	text := s.draft
	s.draft = ""
	return text
}

func (s *Session) SetDraft(text string) { s.draft = text }
func (s *Session) Draft() string        { return s.draft }

// SendFailed restores the compose box after a rejected send so nothing is
// silently lost.
func (s *Session) SendFailed(text string) {
	s.draft = text
}

// createdAt first, id breaks ties
func (s *Session) sortMessages() {
	sort.SliceStable(s.messages, func(i, j int) bool {
		a, b := s.messages[i], s.messages[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}
