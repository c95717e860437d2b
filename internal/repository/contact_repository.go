package repository

import (
	"context"

	"lites-backend/internal/domain"

	"gorm.io/gorm"
)

type PostgresContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &PostgresContactRepository{db: db}
}

// Add inserts a contact edge. Re-adding an existing edge is treated as
// success so the operation stays idempotent.
func (r *PostgresContactRepository) Add(ctx context.Context, c *domain.Contact) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

func (r *PostgresContactRepository) ListWithProfiles(ctx context.Context, userID int64) ([]domain.ContactProfile, error) {
	var contacts []domain.ContactProfile
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.nickname, u.username, u.avatar_type, u.avatar_value, u.is_premium
		FROM users u
		JOIN contacts c ON u.id = c.contact_id
		WHERE c.user_id = ?
		ORDER BY u.nickname`,
		userID).Scan(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
