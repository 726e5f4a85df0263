package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
)

// PartnerHandler serves the partner directory, check-ins, and ad watching.
type PartnerHandler struct {
	facade PartnerFacade
}

// NewPartnerHandler creates PartnerHandler instance.
func NewPartnerHandler(facade PartnerFacade) *PartnerHandler {
	return &PartnerHandler{facade: facade}
}

// Nearby handles GET /api/partners/nearby.
func (h *PartnerHandler) Nearby(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.NearbyPartners(c.Request.Context()))
}

// Details handles GET /api/partners/:partnerId.
func (h *PartnerHandler) Details(c *gin.Context) {
	partner, err := h.facade.PartnerDetails(c.Request.Context(), c.Param("partnerId"))
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, partner)
}

// CheckIn handles POST /api/location/checkin/:partnerId.
func (h *PartnerHandler) CheckIn(c *gin.Context) {
	result, err := h.facade.CheckIn(c.Request.Context(), c.Param("partnerId"))
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyLocation handles POST /api/quiz/location/verify.
func (h *PartnerHandler) VerifyLocation(c *gin.Context) {
	var req dto.VerifyLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.VerifyLocation(c.Request.Context(), provider.VerifyLocationParams{
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		PartnerID:          req.PartnerID,
		VerificationMethod: req.VerificationMethod,
		DeviceInfo:         req.DeviceInfo,
		Timestamp:          req.Timestamp,
	})
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// WatchAd handles POST /api/quiz/ads/watch.
func (h *PartnerHandler) WatchAd(c *gin.Context) {
	var req dto.WatchAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.WatchAd(c.Request.Context(), req.AdID, req.AdTitle)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// AdProgress handles GET /api/quiz/ads/progress.
func (h *PartnerHandler) AdProgress(c *gin.Context) {
	progress, err := h.facade.AdProgress(c.Request.Context())
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, progress)
}

// AvailableAds handles GET /api/quiz/ads/available.
func (h *PartnerHandler) AvailableAds(c *gin.Context) {
	ads, err := h.facade.AvailableAds(c.Request.Context())
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, dto.AvailableAdsResponse{Ads: ads})
}
