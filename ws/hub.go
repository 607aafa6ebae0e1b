package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/utils"
)

const persistTimeout = 10 * time.Second

// UserDirectory resolves display names for notification payloads.
type UserDirectory interface {
	DisplayName(userID uint) (string, error)
}

// Hub owns the upgrade endpoint and dispatches inbound events to the
// router, relay and notifier. All collaborators are injected so the event
// handling is testable without a socket.
type Hub struct {
	registry *Registry
	router   *Router
	relay    *Relay
	notifier *Notifier
	orders   OrderDirectory
	users    UserDirectory
	log      zerolog.Logger
}

func NewHub(registry *Registry, router *Router, relay *Relay, notifier *Notifier, orders OrderDirectory, users UserDirectory, log zerolog.Logger) *Hub {
	return &Hub{
		registry: registry,
		router:   router,
		relay:    relay,
		notifier: notifier,
		orders:   orders,
		users:    users,
		log:      log,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and runs the connection's pumps. The JWT
// middleware has already bound userId/role on the context.
func (h *Hub) HandleWS(c *gin.Context) {
	identity := Identity{
		UserID: utils.CurrentUserID(c),
		Role:   utils.CurrentRole(c),
	}
	if identity.UserID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing identity"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("upgrade failed")
		return
	}

	client := newClient(uuid.NewString(), identity, conn, h.log)
	h.registry.Register(client.ID, client)
	h.log.Info().Str("conn_id", client.ID).Uint("user_id", identity.UserID).Msg("connected")

	go client.writePump()
	client.readPump(h.dispatch, func(cl *Client) {
		h.registry.Unregister(cl.ID)
		h.log.Info().Str("conn_id", cl.ID).Msg("disconnected")
	})
}

// dispatch handles one inbound frame. Frames on a connection arrive and
// are handled serially.
func (h *Hub) dispatch(c *Client, raw []byte) {
	var evt Event
	if err := json.Unmarshal(raw, &evt); err != nil {
		h.pushError(c, "bad_frame", "frame is not valid JSON")
		return
	}

	switch evt.Kind {
	case EventJoinOrderChat:
		var p JoinOrderChatPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			h.pushError(c, "bad_frame", "invalid join payload")
			return
		}
		if err := h.router.JoinOrderChat(c.ID, p.OrderID, c.identity); err != nil {
			h.pushError(c, "denied", "not a participant of this order")
			return
		}

	case EventJoinUserNotifications:
		// always the connection's own channel, regardless of the payload
		h.router.JoinUserNotifications(c.ID, c.identity.UserID)

	case EventJoinAdminNotifications:
		if err := h.router.JoinAdminNotifications(c.ID, c.identity); err != nil {
			h.pushError(c, "denied", "admin channel requires an admin role")
			return
		}

	case EventLeaveRoom:
		var p LeaveRoomPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			h.pushError(c, "bad_frame", "invalid leave payload")
			return
		}
		h.router.Leave(c.ID, p.Room)

	case EventSendMessage:
		var p SendMessagePayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			h.pushError(c, "bad_frame", "invalid message payload")
			return
		}
		h.handleSend(c, p)

	default:
		h.pushError(c, "unknown_event", string(evt.Kind))
	}
}

func (h *Hub) handleSend(c *Client, p SendMessagePayload) {
	// senders must have joined the room first; membership is never implied
	if !h.isMember(c.ID, OrderRoom(p.OrderID)) {
		h.pushError(c, "denied", "join the order chat before sending")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	draft := Draft{Content: p.Content, ImageURL: p.ImageURL, Location: p.Location}
	msg, err := h.relay.SendMessage(ctx, p.OrderID, c.identity, draft)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			h.pushError(c, "empty_message", "message needs text, an image or a location")
		case errors.Is(err, ErrPersistenceFailed):
			h.pushError(c, "persistence_failed", "message was not saved, try again")
		default:
			h.pushError(c, "send_failed", "message was not sent")
		}
		return
	}

	h.notifyCounterpart(c.identity, msg)
}

// notifyCounterpart pushes the new-message notification to the party that
// did not write: the order owner when an admin sends, the admin channel
// when a customer sends.
func (h *Hub) notifyCounterpart(sender Identity, msg *entity.ChatMessage) {
	name, err := h.users.DisplayName(sender.UserID)
	if err != nil || name == "" {
		name = sender.Role
	}

	preview := msg.Content
	if preview == "" && msg.ImageURL != "" {
		preview = "sent an image"
	}
	if preview == "" && msg.Location != "" {
		preview = "shared a location"
	}

	if sender.IsAdmin() {
		owner, err := h.orders.OwnerOf(msg.OrderID)
		if err != nil {
			h.log.Warn().Err(err).Uint("order_id", msg.OrderID).Msg("owner lookup failed")
			return
		}
		h.notifier.NotifyNewMessage(msg.OrderID, owner, name, preview)
		return
	}
	h.notifier.NotifyAdminsNewMessage(msg.OrderID, name, preview)
}

func (h *Hub) isMember(connID string, room RoomKey) bool {
	for _, r := range h.registry.RoomsOf(connID) {
		if r == room {
			return true
		}
	}
	return false
}

func (h *Hub) pushError(c *Client, code, message string) {
	evt, err := NewEvent(EventError, ErrorPayload{Code: code, Message: message})
	if err != nil {
		return
	}
	c.Push(evt)
}
