package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
)

// PointsHandler serves the loyalty point ledger.
type PointsHandler struct {
	facade PointsFacade
}

// NewPointsHandler creates PointsHandler instance.
func NewPointsHandler(facade PointsFacade) *PointsHandler {
	return &PointsHandler{facade: facade}
}

// Balance handles GET /api/loyalty-points/:userId.
func (h *PointsHandler) Balance(c *gin.Context) {
	points, err := h.facade.LoyaltyPoints(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, points)
}

// Add handles POST /api/loyalty-points/add.
func (h *PointsHandler) Add(c *gin.Context) {
	var req dto.AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	balance, err := h.facade.AddLoyaltyPoints(c.Request.Context(), provider.AddPointsParams{
		UserID:    req.UserID,
		Points:    req.Points,
		Reason:    req.Reason,
		PartnerID: req.PartnerID,
	})
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, dto.AddPointsResponse{
		Success:    true,
		NewBalance: balance,
		Message:    "points added",
	})
}

// Transactions handles GET /api/transactions/:userId.
func (h *PointsHandler) Transactions(c *gin.Context) {
	transactions, err := h.facade.Transactions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, transactions)
}
