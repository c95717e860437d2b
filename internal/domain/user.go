package domain

import (
	"time"
)

// Avatar defaults applied when registration omits them.
const (
	DefaultAvatarType  = "emoji"
	DefaultAvatarValue = "😊"
)

// User represents the users table. The phone number is the login identity;
// there is no credential beyond it.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Phone        string `gorm:"size:32;uniqueIndex;not null"`
	Nickname     string `gorm:"size:128"`
	Username     string `gorm:"size:128"`
	AvatarType   string `gorm:"size:32;default:emoji"`
	AvatarValue  string `gorm:"size:64"`
	IsPremium    bool   `gorm:"default:false"`
	PremiumUntil *time.Time
	LastOnline   *time.Time
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
