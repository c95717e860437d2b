package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lites-backend/internal/domain"
	"lites-backend/internal/repository"
	lites_errors "lites-backend/pkg/errors"
	"lites-backend/pkg/logger"

	"gorm.io/gorm"
)

// Premium subscription pricing and duration.
const (
	PremiumPrice  = domain.Amount(35000) // 350.00 RUB in kopecks
	PremiumPeriod = 30 * 24 * time.Hour
)

// The gateway is stubbed: the URL does not resolve to a real processor.
const paymentURLBase = "https://payment.example.com/pay/"

// PaymentService creates and confirms payments and activates premium
// subscriptions.
type PaymentService struct {
	db       *gorm.DB
	payments repository.PaymentRepository
	users    repository.UserRepository
	log      *logger.Logger
}

func NewPaymentService(db *gorm.DB, payments repository.PaymentRepository, users repository.UserRepository, log *logger.Logger) *PaymentService {
	return &PaymentService{db: db, payments: payments, users: users, log: log}
}

type CreatePaymentInput struct {
	UserID        int64
	PaymentType   string
	PaymentMethod string
	Amount        *float64
}

// CreatePayment inserts a pending payment with a transaction id derived from
// the user id and the current Unix timestamp.
func (s *PaymentService) CreatePayment(ctx context.Context, in CreatePaymentInput) (domain.Payment, error) {
	amount := PremiumPrice
	if in.Amount != nil {
		amount = domain.AmountFromFloat(*in.Amount)
	}
	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = domain.PaymentTypePremiumSubscription
	}

	p := domain.Payment{
		UserID:        in.UserID,
		Amount:        amount,
		Currency:      domain.DefaultCurrency,
		PaymentType:   paymentType,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.PaymentStatusPending,
		TransactionID: fmt.Sprintf("TXN_%d_%d", in.UserID, time.Now().Unix()),
	}
	if err := s.payments.Create(ctx, &p); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}

// PaymentURL builds the stub gateway URL for a transaction.
func PaymentURL(transactionID string) string {
	return paymentURLBase + transactionID
}

// ConfirmPayment completes the payment and, for premium subscriptions,
// extends the owner's premium window. Both updates commit together.
// A transaction id that matches no payment still reports success; the miss
// is only logged.
func (s *PaymentService) ConfirmPayment(ctx context.Context, transactionID string) error {
	if s.db == nil {
		return s.confirm(ctx, s.payments, s.users, transactionID)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.confirm(ctx, repository.NewPaymentRepository(tx), repository.NewUserRepository(tx), transactionID)
	})
}

func (s *PaymentService) confirm(ctx context.Context, payments repository.PaymentRepository, users repository.UserRepository, transactionID string) error {
	res, err := payments.CompleteByTransactionID(ctx, transactionID, time.Now())
	if err != nil {
		if errors.Is(err, lites_errors.ErrNotFound) {
			if s.log != nil {
				s.log.Warnf("payment confirm matched no row: transaction_id=%s", transactionID)
			}
			return nil
		}
		return err
	}

	if res.PaymentType == domain.PaymentTypePremiumSubscription {
		until := time.Now().Add(PremiumPeriod)
		if err := users.ActivatePremium(ctx, res.UserID, until); err != nil {
			return err
		}
	}
	return nil
}

func (s *PaymentService) History(ctx context.Context, userID int64) ([]domain.Payment, error) {
	return s.payments.ListByUser(ctx, userID)
}
