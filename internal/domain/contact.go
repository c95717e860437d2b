package domain

import (
	"time"
)

// Contact is a directed edge: user_id added contact_id. Duplicate edges are
// ignored on insert.
type Contact struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	ContactID int64     `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactProfile is the contact-list projection joined with the contact's
// profile fields.
type ContactProfile struct {
	ID          int64
	Nickname    string
	Username    string
	AvatarType  string
	AvatarValue string
	IsPremium   bool
}
