package repository

import (
	"context"

	"lites-backend/internal/domain"

	"gorm.io/gorm"
)

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListChatMessages returns chat messages in ascending creation order, each
// joined with the sender's current profile.
func (r *PostgresMessageRepository) ListChatMessages(ctx context.Context, chatID int64, limit int) ([]domain.MessageWithSender, error) {
	var messages []domain.MessageWithSender
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id, m.sender_id, m.content, m.message_type, m.created_at,
		       u.nickname AS sender_nickname,
		       u.avatar_type AS sender_avatar_type,
		       u.avatar_value AS sender_avatar_value
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.chat_id = ?
		ORDER BY m.created_at ASC
		LIMIT ?`,
		chatID, limit).Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
