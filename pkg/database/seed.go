package database

import (
	"fmt"

	"lites-backend/internal/domain"

	"gorm.io/gorm"
)

// SeedResult holds what development seeding produced.
type SeedResult struct {
	Users []domain.User
}

// SeedDevelopment inserts a couple of demo users so a fresh database is
// usable from the client right away. Re-running is safe: existing phones
// are reused, not duplicated.
func SeedDevelopment(db *gorm.DB) (*SeedResult, error) {
	demo := []domain.User{
		{Phone: "79990000001", Nickname: "Алиса", Username: "alice", AvatarType: domain.DefaultAvatarType, AvatarValue: "🦊"},
		{Phone: "79990000002", Nickname: "Боб", Username: "bob", AvatarType: domain.DefaultAvatarType, AvatarValue: "🐻"},
	}

	result := &SeedResult{}
	for i := range demo {
		u := demo[i]
		err := db.Where(domain.User{Phone: u.Phone}).FirstOrCreate(&u).Error
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Phone, err)
		}
		result.Users = append(result.Users, u)
	}
	return result, nil
}
