package domain

import (
	"time"
)

const MessageTypeText = "text"

// Message represents the messages table. Messages are immutable once created
// and ordered by created_at.
type Message struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ChatID      int64  `gorm:"not null;index"`
	SenderID    int64  `gorm:"not null"`
	Content     string `gorm:"type:text"`
	MessageType string `gorm:"size:16;not null;default:text"`
	CreatedAt   time.Time
}

func (Message) TableName() string {
	return "messages"
}

// MessageWithSender is the message-history projection, joined with the
// sender's current profile (not a snapshot).
type MessageWithSender struct {
	ID                int64
	SenderID          int64
	Content           string
	MessageType       string
	CreatedAt         time.Time
	SenderNickname    string
	SenderAvatarType  string
	SenderAvatarValue string
}
