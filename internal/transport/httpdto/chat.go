package httpdto

import (
	"time"

	"lites-backend/internal/domain"
)

// ChatAction enumerates the recognized chat operations, across POST and GET.
type ChatAction string

const (
	ChatActionCreateChat  ChatAction = "create_chat"
	ChatActionSendMessage ChatAction = "send_message"
	ChatActionAddContact  ChatAction = "add_contact"
	ChatActionGetChats    ChatAction = "get_chats"
	ChatActionGetMessages ChatAction = "get_messages"
	ChatActionGetContacts ChatAction = "get_contacts"
)

// ChatPostRequest is the POST body for the chat endpoint; the action field
// selects which of the other fields apply.
type ChatPostRequest struct {
	Action      string  `json:"action"`
	Type        string  `json:"type"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CreatedBy   int64   `json:"created_by"`
	Members     []int64 `json:"members"`
	ChatID      int64   `json:"chat_id"`
	SenderID    int64   `json:"sender_id"`
	Content     string  `json:"content"`
	MessageType string  `json:"message_type"`
	UserID      int64   `json:"user_id"`
	ContactID   int64   `json:"contact_id"`
}

type CreateChatResponse struct {
	Success bool  `json:"success"`
	ChatID  int64 `json:"chat_id"`
}

type MessageDTO struct {
	ID        int64  `json:"id"`
	ChatID    int64  `json:"chat_id"`
	SenderID  int64  `json:"sender_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type SendMessageResponse struct {
	Success bool       `json:"success"`
	Message MessageDTO `json:"message"`
}

func NewSendMessageResponse(m domain.Message) SendMessageResponse {
	return SendMessageResponse{
		Success: true,
		Message: MessageDTO{
			ID:        m.ID,
			ChatID:    m.ChatID,
			SenderID:  m.SenderID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		},
	}
}

type ChatSummaryDTO struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	AvatarURL   *string `json:"avatar_url"`
	LastMessage *string `json:"last_message"`
}

type ChatsResponse struct {
	Success bool             `json:"success"`
	Chats   []ChatSummaryDTO `json:"chats"`
}

func NewChatsResponse(chats []domain.ChatSummary) ChatsResponse {
	dtos := make([]ChatSummaryDTO, 0, len(chats))
	for _, c := range chats {
		dtos = append(dtos, ChatSummaryDTO{
			ID:          c.ID,
			Type:        c.Type,
			Name:        c.Name,
			Description: c.Description,
			AvatarURL:   c.AvatarURL,
			LastMessage: c.LastMessage,
		})
	}
	return ChatsResponse{Success: true, Chats: dtos}
}

type SenderDTO struct {
	Nickname    string `json:"nickname"`
	AvatarType  string `json:"avatar_type"`
	AvatarValue string `json:"avatar_value"`
}

type ChatMessageDTO struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"sender_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	CreatedAt   string    `json:"created_at"`
	Sender      SenderDTO `json:"sender"`
}

type MessagesResponse struct {
	Success  bool             `json:"success"`
	Messages []ChatMessageDTO `json:"messages"`
}

func NewMessagesResponse(messages []domain.MessageWithSender) MessagesResponse {
	dtos := make([]ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, ChatMessageDTO{
			ID:          m.ID,
			SenderID:    m.SenderID,
			Content:     m.Content,
			MessageType: m.MessageType,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
			Sender: SenderDTO{
				Nickname:    m.SenderNickname,
				AvatarType:  m.SenderAvatarType,
				AvatarValue: m.SenderAvatarValue,
			},
		})
	}
	return MessagesResponse{Success: true, Messages: dtos}
}

type ContactDTO struct {
	ID          int64  `json:"id"`
	Nickname    string `json:"nickname"`
	Username    string `json:"username"`
	AvatarType  string `json:"avatar_type"`
	AvatarValue string `json:"avatar_value"`
	IsPremium   bool   `json:"is_premium"`
}

type ContactsResponse struct {
	Success  bool         `json:"success"`
	Contacts []ContactDTO `json:"contacts"`
}

func NewContactsResponse(contacts []domain.ContactProfile) ContactsResponse {
	dtos := make([]ContactDTO, 0, len(contacts))
	for _, c := range contacts {
		dtos = append(dtos, ContactDTO{
			ID:          c.ID,
			Nickname:    c.Nickname,
			Username:    c.Username,
			AvatarType:  c.AvatarType,
			AvatarValue: c.AvatarValue,
			IsPremium:   c.IsPremium,
		})
	}
	return ContactsResponse{Success: true, Contacts: dtos}
}
