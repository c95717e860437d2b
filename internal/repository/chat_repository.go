package repository

import (
	"context"

	"lites-backend/internal/domain"

	"gorm.io/gorm"
)

type PostgresChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) CreateChat(ctx context.Context, c *domain.Chat) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *PostgresChatRepository) AddMember(ctx context.Context, m *domain.ChatMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListUserChats returns every chat the user is a member of or created,
// de-duplicated, newest chat first, each with its latest message content.
func (r *PostgresChatRepository) ListUserChats(ctx context.Context, userID int64) ([]domain.ChatSummary, error) {
	var chats []domain.ChatSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT c.id, c.type, c.name, c.description, c.avatar_url,
		       (SELECT content FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_message
		FROM chats c
		LEFT JOIN chat_members cm ON c.id = cm.chat_id
		WHERE cm.user_id = ? OR c.created_by = ?
		ORDER BY c.id DESC`,
		userID, userID).Scan(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}
