package services

import (
	"context"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
	"github.com/muhwezim78/Nashiecom-sub000/ws"
)

// ChatService owns order-chat persistence. It backs both the REST history
// endpoints and the realtime relay (it is the relay's MessageStore).
type ChatService struct {
	repo      *repository.ChatRepository
	orderRepo *repository.OrderRepository
	userRepo  *repository.UserRepository
	notifRepo *repository.NotificationRepository
}

func NewChatService(repo *repository.ChatRepository, orderRepo *repository.OrderRepository, userRepo *repository.UserRepository, notifRepo *repository.NotificationRepository) *ChatService {
	return &ChatService{
		repo:      repo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
	}
}

// CanAccess reports whether the user may read an order's chat: the owning
// customer or any admin.
func (s *ChatService) CanAccess(userID uint, role string, orderID uint) (bool, error) {
	if role == entity.RoleAdmin {
		return true, nil
	}
	o, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return false, err
	}
	return o.UserID == userID, nil
}

// History returns the order's messages in display order.
func (s *ChatService) History(orderID uint) ([]entity.ChatMessage, error) {
	return s.repo.FindMessagesByOrder(orderID)
}

// SaveMessage persists a chat message and writes the durable notification
// rows for the other party. Implements ws.MessageStore; id and createdAt
// are assigned here.
func (s *ChatService) SaveMessage(ctx context.Context, orderID uint, sender ws.Identity, d ws.Draft) (*entity.ChatMessage, error) {
	if d.Empty() {
		return nil, ErrEmptyMessage
	}

	msg := &entity.ChatMessage{
		OrderID:    orderID,
		SenderID:   sender.UserID,
		SenderRole: sender.Role,
		Content:    d.Content,
		ImageURL:   d.ImageURL,
		Location:   d.Location,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	// the message row is the source of truth; notification rows are
	// best-effort
	s.recordNotifications(msg, sender)
	return msg, nil
}

func (s *ChatService) recordNotifications(msg *entity.ChatMessage, sender ws.Identity) {
	name, err := s.DisplayName(sender.UserID)
	if err != nil || name == "" {
		name = sender.Role
	}

	if sender.IsAdmin() {
		o, err := s.orderRepo.FindByID(msg.OrderID)
		if err != nil {
			return
		}
		_ = s.notifRepo.Create(&entity.Notification{
			UserID:  o.UserID,
			Kind:    entity.NotificationNewMessage,
			OrderID: msg.OrderID,
			Title:   "New message from " + name,
			Body:    msg.Content,
		})
		return
	}

	admins, err := s.userRepo.ListByRole(entity.RoleAdmin)
	if err != nil {
		return
	}
	for _, admin := range admins {
		_ = s.notifRepo.Create(&entity.Notification{
			UserID:  admin.ID,
			Kind:    entity.NotificationNewMessage,
			OrderID: msg.OrderID,
			Title:   "New message from " + name,
			Body:    msg.Content,
		})
	}
}

// DisplayName implements ws.UserDirectory for notification payloads.
func (s *ChatService) DisplayName(userID uint) (string, error) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	return u.FullName(), nil
}
