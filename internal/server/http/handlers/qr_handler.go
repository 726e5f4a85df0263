package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
)

// QRHandler serves QR code generation, scanning, and history.
type QRHandler struct {
	facade QRFacade
}

// NewQRHandler creates QRHandler instance.
func NewQRHandler(facade QRFacade) *QRHandler {
	return &QRHandler{facade: facade}
}

// Generate handles POST /api/qr/generate.
func (h *QRHandler) Generate(c *gin.Context) {
	var req dto.GenerateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	code, err := h.facade.GenerateQR(c.Request.Context(), provider.GenerateQRParams{
		Type:         req.Type,
		PointsAmount: req.PointsAmount,
		Description:  req.Description,
	})
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusCreated, code)
}

// Scan handles POST /api/qr/scan.
func (h *QRHandler) Scan(c *gin.Context) {
	var req dto.ScanQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ScanQR(c.Request.Context(), req.QRData)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// History handles GET /api/qr/history.
func (h *QRHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.QRHistory(c.Request.Context()))
}
