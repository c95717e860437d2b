package repository

import (
	"context"
	"errors"
	"time"

	"lites-backend/internal/domain"
	lites_errors "lites-backend/pkg/errors"

	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts a user. A duplicate phone is not pre-checked here; the
// unique constraint error propagates to the caller.
func (r *PostgresUserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *PostgresUserRepository) GetByPhone(ctx context.Context, phone string) (domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, lites_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) TouchLastOnline(ctx context.Context, userID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("last_online", at).Error
}

func (r *PostgresUserRepository) ActivatePremium(ctx context.Context, userID int64, until time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_premium":    true,
			"premium_until": until,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return lites_errors.ErrNotFound
	}
	return nil
}
