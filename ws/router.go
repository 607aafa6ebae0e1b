package ws

import (
	"fmt"
)

// OrderDirectory resolves order ownership for join authorization.
type OrderDirectory interface {
	OwnerOf(orderID uint) (uint, error)
}

// Router decides which rooms a connection may join. All checks are local:
// a rejected join never affects other connections.
type Router struct {
	registry *Registry
	orders   OrderDirectory
}

func NewRouter(registry *Registry, orders OrderDirectory) *Router {
	return &Router{registry: registry, orders: orders}
}

// JoinOrderChat admits the order's owning customer and any admin.
func (rt *Router) JoinOrderChat(connID string, orderID uint, id Identity) error {
	if !id.IsAdmin() {
		owner, err := rt.orders.OwnerOf(orderID)
		if err != nil {
			return fmt.Errorf("%w: order %d not found", ErrDenied, orderID)
		}
		if owner != id.UserID {
			return ErrDenied
		}
	}
	rt.registry.Join(connID, OrderRoom(orderID))
	return nil
}

// JoinUserNotifications joins a user's notification room. Authorization is
// the caller's responsibility; the hub only ever issues this for the
// connection's own authenticated user id.
func (rt *Router) JoinUserNotifications(connID string, userID uint) {
	rt.registry.Join(connID, UserRoom(userID))
}

// JoinAdminNotifications joins the admin broadcast room, admins only.
func (rt *Router) JoinAdminNotifications(connID string, id Identity) error {
	if !id.IsAdmin() {
		return ErrDenied
	}
	rt.registry.Join(connID, AdminRoom)
	return nil
}

// Leave is an explicit, idempotent leave.
func (rt *Router) Leave(connID string, room RoomKey) {
	rt.registry.Leave(connID, room)
}
