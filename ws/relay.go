package ws

import (
	"context"
	"fmt"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/rs/zerolog"
)

// Draft is an unsent message. At least one field must be set.
type Draft struct {
	Content  string
	ImageURL string
	Location string
}

func (d Draft) Empty() bool {
	return d.Content == "" && d.ImageURL == "" && d.Location == ""
}

// MessageStore persists a draft and returns the stored message with its
// server-assigned id and timestamp.
type MessageStore interface {
	SaveMessage(ctx context.Context, orderID uint, sender Identity, d Draft) (*entity.ChatMessage, error)
}

// Relay accepts outbound messages, persists them, then fans them out to
// the order room. It never broadcasts before persistence succeeds: a
// message without a durable id cannot be deduplicated by receivers.
type Relay struct {
	registry *Registry
	store    MessageStore
	log      zerolog.Logger
}

func NewRelay(registry *Registry, store MessageStore, log zerolog.Logger) *Relay {
	return &Relay{registry: registry, store: store, log: log}
}

// SendMessage persists the draft and broadcasts the stored message to every
// member of the order room, sender included; receivers dedup by id.
func (r *Relay) SendMessage(ctx context.Context, orderID uint, sender Identity, d Draft) (*entity.ChatMessage, error) {
	if d.Empty() {
		return nil, ErrEmptyMessage
	}

	msg, err := r.store.SaveMessage(ctx, orderID, sender, d)
	if err != nil {
		r.log.Error().Err(err).Uint("order_id", orderID).Msg("message persistence failed")
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	evt, err := NewEvent(EventReceiveMessage, msg)
	if err != nil {
		// persisted but not deliverable live; history fetch will pick it up
		r.log.Error().Err(err).Uint("message_id", msg.ID).Msg("encode broadcast failed")
		return msg, nil
	}

	n := r.registry.Broadcast(OrderRoom(orderID), evt)
	r.log.Debug().
		Uint("order_id", orderID).
		Uint("message_id", msg.ID).
		Int("receivers", n).
		Msg("message relayed")
	return msg, nil
}
