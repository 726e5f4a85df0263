package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
)

// PaymentHandler serves payment methods and subscriptions.
type PaymentHandler struct {
	facade PaymentsFacade
}

// NewPaymentHandler creates PaymentHandler instance.
func NewPaymentHandler(facade PaymentsFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Methods handles GET /api/payments/methods.
func (h *PaymentHandler) Methods(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.PaymentMethods(c.Request.Context()))
}

// AddMethod handles POST /api/payments/methods.
func (h *PaymentHandler) AddMethod(c *gin.Context) {
	var method model.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.AddPaymentMethod(c.Request.Context(), method)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Plans handles GET /api/subscriptions/plans.
func (h *PaymentHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.SubscriptionPlans(c.Request.Context()))
}

// Subscribe handles POST /api/subscriptions/subscribe.
func (h *PaymentHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.Subscribe(c.Request.Context(), req.PlanID, req.PaymentMethodID)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, result)
}
