package repository

import (
	"context"
	"errors"
	"time"

	"lites-backend/internal/domain"
	lites_errors "lites-backend/pkg/errors"

	"gorm.io/gorm"
)

type PostgresPaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

func (r *PostgresPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresPaymentRepository) CompleteByTransactionID(ctx context.Context, transactionID string, at time.Time) (domain.PaymentConfirmation, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentConfirmation{}, lites_errors.ErrNotFound
		}
		return domain.PaymentConfirmation{}, err
	}

	err = r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("transaction_id = ?", transactionID).
		Updates(map[string]interface{}{
			"status":       domain.PaymentStatusCompleted,
			"completed_at": at,
		}).Error
	if err != nil {
		return domain.PaymentConfirmation{}, err
	}

	return domain.PaymentConfirmation{UserID: p.UserID, PaymentType: p.PaymentType}, nil
}

func (r *PostgresPaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
