package services

import (
	"context"

	"lites-backend/internal/domain"
	"lites-backend/internal/repository"

	"gorm.io/gorm"
)

// messageHistoryLimit caps a single get_messages page.
const messageHistoryLimit = 100

// ChatService manages chats, messages and contacts. Multi-statement
// operations run inside a transaction; when constructed without a db the
// same logic runs directly on the injected repositories.
type ChatService struct {
	db       *gorm.DB
	chats    repository.ChatRepository
	messages repository.MessageRepository
	contacts repository.ContactRepository
}

func NewChatService(db *gorm.DB, chats repository.ChatRepository, messages repository.MessageRepository, contacts repository.ContactRepository) *ChatService {
	return &ChatService{db: db, chats: chats, messages: messages, contacts: contacts}
}

type CreateChatInput struct {
	Type        string
	Name        *string
	Description *string
	CreatedBy   int64
	Members     []int64
}

// CreateChat inserts the chat row and its membership rows as one atomic
// operation: either every insert commits or none do.
func (s *ChatService) CreateChat(ctx context.Context, in CreateChatInput) (int64, error) {
	if s.db == nil {
		return s.createChat(ctx, s.chats, in)
	}
	var chatID int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.createChat(ctx, repository.NewChatRepository(tx), in)
		if err != nil {
			return err
		}
		chatID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return chatID, nil
}

func (s *ChatService) createChat(ctx context.Context, chats repository.ChatRepository, in CreateChatInput) (int64, error) {
	chatType := in.Type
	if chatType == "" {
		chatType = domain.ChatTypePersonal
	}

	chat := domain.Chat{
		Type:        chatType,
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   in.CreatedBy,
	}
	if err := chats.CreateChat(ctx, &chat); err != nil {
		return 0, err
	}

	if chatType == domain.ChatTypeGroup || chatType == domain.ChatTypeChannel {
		admin := domain.ChatMember{ChatID: chat.ID, UserID: in.CreatedBy, Role: domain.RoleAdmin}
		if err := chats.AddMember(ctx, &admin); err != nil {
			return 0, err
		}
	}

	for _, memberID := range in.Members {
		if memberID == in.CreatedBy {
			continue
		}
		m := domain.ChatMember{ChatID: chat.ID, UserID: memberID, Role: domain.RoleMember}
		if err := chats.AddMember(ctx, &m); err != nil {
			return 0, err
		}
	}

	return chat.ID, nil
}

type SendMessageInput struct {
	ChatID      int64
	SenderID    int64
	Content     string
	MessageType string
}

// SendMessage inserts a message and returns it with the generated id and
// server-assigned timestamp.
func (s *ChatService) SendMessage(ctx context.Context, in SendMessageInput) (domain.Message, error) {
	if in.MessageType == "" {
		in.MessageType = domain.MessageTypeText
	}
	m := domain.Message{
		ChatID:      in.ChatID,
		SenderID:    in.SenderID,
		Content:     in.Content,
		MessageType: in.MessageType,
	}
	if err := s.messages.Create(ctx, &m); err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

// AddContact records a directed contact edge, idempotently.
func (s *ChatService) AddContact(ctx context.Context, userID, contactID int64) error {
	c := domain.Contact{UserID: userID, ContactID: contactID}
	return s.contacts.Add(ctx, &c)
}

func (s *ChatService) Chats(ctx context.Context, userID int64) ([]domain.ChatSummary, error) {
	return s.chats.ListUserChats(ctx, userID)
}

func (s *ChatService) Messages(ctx context.Context, chatID int64) ([]domain.MessageWithSender, error) {
	return s.messages.ListChatMessages(ctx, chatID, messageHistoryLimit)
}

func (s *ChatService) Contacts(ctx context.Context, userID int64) ([]domain.ContactProfile, error) {
	return s.contacts.ListWithProfiles(ctx, userID)
}
