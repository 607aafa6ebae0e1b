package repository

import (
	"context"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// FindMessagesByOrder returns the full history in display order:
// created_at first, id as the tie-breaker.
func (r *ChatRepository) FindMessagesByOrder(orderID uint) ([]entity.ChatMessage, error) {
	var msgs []entity.ChatMessage
	err := r.db.
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

// CreateMessage honours the caller's deadline: the relay will not wait on
// a stuck persistence call forever.
func (r *ChatRepository) CreateMessage(ctx context.Context, msg *entity.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
