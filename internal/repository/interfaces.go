package repository

import (
	"context"
	"time"

	"lites-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByPhone(ctx context.Context, phone string) (domain.User, error)
	TouchLastOnline(ctx context.Context, userID int64, at time.Time) error
	ActivatePremium(ctx context.Context, userID int64, until time.Time) error
}

type ChatRepository interface {
	CreateChat(ctx context.Context, c *domain.Chat) error
	AddMember(ctx context.Context, m *domain.ChatMember) error
	ListUserChats(ctx context.Context, userID int64) ([]domain.ChatSummary, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	ListChatMessages(ctx context.Context, chatID int64, limit int) ([]domain.MessageWithSender, error)
}

type ContactRepository interface {
	// Add inserts a contact edge; a duplicate edge is accepted silently.
	Add(ctx context.Context, c *domain.Contact) error
	ListWithProfiles(ctx context.Context, userID int64) ([]domain.ContactProfile, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	// CompleteByTransactionID marks the matching payment completed and returns
	// its owner and type. Returns ErrNotFound when no payment matches.
	CompleteByTransactionID(ctx context.Context, transactionID string, at time.Time) (domain.PaymentConfirmation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
}
