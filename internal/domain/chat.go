package domain

import (
	"time"
)

// Chat types.
const (
	ChatTypePersonal = "personal"
	ChatTypeGroup    = "group"
	ChatTypeChannel  = "channel"
)

// Member roles. Group and channel creators always hold RoleAdmin.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Chat represents the chats table
type Chat struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Type        string `gorm:"size:16;not null;default:personal"`
	Name        *string
	Description *string
	AvatarURL   *string
	CreatedBy   int64 `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (Chat) TableName() string {
	return "chats"
}

// ChatMember represents the chat_members table. One row per (chat, user) pair.
type ChatMember struct {
	ChatID   int64     `gorm:"primaryKey;autoIncrement:false"`
	UserID   int64     `gorm:"primaryKey;autoIncrement:false"`
	Role     string    `gorm:"size:16;not null;default:member"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMember) TableName() string {
	return "chat_members"
}

// ChatSummary is the chat-list projection: one row per chat the user belongs
// to or created, annotated with the latest message content.
type ChatSummary struct {
	ID          int64
	Type        string
	Name        *string
	Description *string
	AvatarURL   *string
	LastMessage *string
}
