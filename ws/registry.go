package ws

import (
	"sync"
)

// Sender is the outbound half of a connection. The registry never touches
// the transport directly, so tests can register plain fakes.
type Sender interface {
	Push(evt Event)
}

// Registry tracks live connections and their room memberships in both
// directions: fan-out needs "all members of room X", teardown needs "all
// rooms of connection Y". One mutex guards the whole index; this is not a
// high-throughput path.
type Registry struct {
	mu     sync.RWMutex
	conns  map[string]Sender
	rooms  map[RoomKey]map[string]struct{}
	joined map[string]map[RoomKey]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		conns:  make(map[string]Sender),
		rooms:  make(map[RoomKey]map[string]struct{}),
		joined: make(map[string]map[RoomKey]struct{}),
	}
}

// Register adds a new connection with an empty membership set.
func (r *Registry) Register(connID string, s Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[connID] = s
	r.joined[connID] = make(map[RoomKey]struct{})
}

// Unregister removes the connection from every room it was a member of.
// Idempotent: unknown ids are a no-op.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for room := range r.joined[connID] {
		delete(r.rooms[room], connID)
		if len(r.rooms[room]) == 0 {
			delete(r.rooms, room)
		}
	}
	delete(r.joined, connID)
	delete(r.conns, connID)
}

// Join adds a membership. Joining before Register is a no-op: membership
// requires a live connection.
func (r *Registry) Join(connID string, room RoomKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[connID]; !ok {
		return
	}
	if r.rooms[room] == nil {
		r.rooms[room] = make(map[string]struct{})
	}
	r.rooms[room][connID] = struct{}{}
	r.joined[connID][room] = struct{}{}
}

// Leave removes a membership. Idempotent.
func (r *Registry) Leave(connID string, room RoomKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if members, ok := r.rooms[room]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
	delete(r.joined[connID], room)
}

func (r *Registry) RoomsOf(connID string) []RoomKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RoomKey, 0, len(r.joined[connID]))
	for room := range r.joined[connID] {
		out = append(out, room)
	}
	return out
}

func (r *Registry) MembersOf(room RoomKey) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.rooms[room]))
	for id := range r.rooms[room] {
		out = append(out, id)
	}
	return out
}

// Broadcast pushes an event to every current member of a room and returns
// how many connections it reached. The member set is snapshotted under the
// read lock, then pushed outside it, so membership may change mid-delivery
// without blocking or racing the index.
func (r *Registry) Broadcast(room RoomKey, evt Event) int {
	r.mu.RLock()
	targets := make([]Sender, 0, len(r.rooms[room]))
	for id := range r.rooms[room] {
		if s, ok := r.conns[id]; ok {
			targets = append(targets, s)
		}
	}
	r.mu.RUnlock()

	for _, s := range targets {
		s.Push(evt)
	}
	return len(targets)
}
