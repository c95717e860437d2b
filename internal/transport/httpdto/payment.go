package httpdto

import (
	"time"

	"lites-backend/internal/domain"
)

// PaymentAction enumerates the recognized payment operations.
type PaymentAction string

const (
	PaymentActionCreate  PaymentAction = "create_payment"
	PaymentActionConfirm PaymentAction = "confirm_payment"
)

// PaymentPostRequest is the POST body for the payments endpoint; the action
// field selects which of the other fields apply. A nil amount falls back to
// the premium subscription price.
type PaymentPostRequest struct {
	Action        string   `json:"action"`
	UserID        int64    `json:"user_id"`
	PaymentType   string   `json:"payment_type"`
	PaymentMethod string   `json:"payment_method"`
	Amount        *float64 `json:"amount"`
	TransactionID string   `json:"transaction_id"`
}

type CreatePaymentResponse struct {
	Success       bool    `json:"success"`
	PaymentID     int64   `json:"payment_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	PaymentURL    string  `json:"payment_url"`
}

func NewCreatePaymentResponse(p domain.Payment, paymentURL string) CreatePaymentResponse {
	return CreatePaymentResponse{
		Success:       true,
		PaymentID:     p.ID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount.Float64(),
		PaymentURL:    paymentURL,
	}
}

type ConfirmPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PaymentDTO struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentType   string  `json:"payment_type"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type PaymentsResponse struct {
	Success  bool         `json:"success"`
	Payments []PaymentDTO `json:"payments"`
}

func NewPaymentsResponse(payments []domain.Payment) PaymentsResponse {
	dtos := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, PaymentDTO{
			ID:            p.ID,
			Amount:        p.Amount.Float64(),
			Currency:      p.Currency,
			PaymentType:   p.PaymentType,
			PaymentMethod: p.PaymentMethod,
			Status:        p.Status,
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}
	return PaymentsResponse{Success: true, Payments: dtos}
}
