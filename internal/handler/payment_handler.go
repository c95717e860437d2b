package handler

import (
	"net/http"

	"lites-backend/internal/services"
	"lites-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment creation, confirmation and history.
type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost:
		h.handlePost(c)
	case http.MethodGet:
		h.history(c)
	default:
		writeInvalidRequest(c)
	}
}

func (h *PaymentHandler) handlePost(c *gin.Context) {
	var req httpdto.PaymentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c)
		return
	}

	switch httpdto.PaymentAction(req.Action) {
	case httpdto.PaymentActionCreate:
		h.createPayment(c, req)
	case httpdto.PaymentActionConfirm:
		h.confirmPayment(c, req)
	default:
		writeInvalidRequest(c)
	}
}

func (h *PaymentHandler) createPayment(c *gin.Context, req httpdto.PaymentPostRequest) {
	p, err := h.service.CreatePayment(c.Request.Context(), services.CreatePaymentInput{
		UserID:        req.UserID,
		PaymentType:   req.PaymentType,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewCreatePaymentResponse(p, services.PaymentURL(p.TransactionID)))
}

func (h *PaymentHandler) confirmPayment(c *gin.Context, req httpdto.PaymentPostRequest) {
	if err := h.service.ConfirmPayment(c.Request.Context(), req.TransactionID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.ConfirmPaymentResponse{
		Success: true,
		Message: "Payment confirmed and premium activated",
	})
}

func (h *PaymentHandler) history(c *gin.Context) {
	userID, ok := idQuery(c, "user_id")
	if !ok {
		writeInvalidRequest(c)
		return
	}
	payments, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewPaymentsResponse(payments))
}
