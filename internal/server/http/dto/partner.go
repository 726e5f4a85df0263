package dto

import "github.com/tnyamakura/loyaltylink/internal/domain/model"

// VerifyLocationRequest proves presence at a partner venue.
type VerifyLocationRequest struct {
	Latitude           float64 `json:"latitude" binding:"required"`
	Longitude          float64 `json:"longitude" binding:"required"`
	PartnerID          string  `json:"partnerId" binding:"required"`
	VerificationMethod string  `json:"verificationMethod" binding:"required"`
	DeviceInfo         string  `json:"deviceInfo"`
	Timestamp          int64   `json:"timestamp"`
}

// WatchAdRequest reports a completed ad view.
type WatchAdRequest struct {
	AdID    string `json:"adId" binding:"required"`
	AdTitle string `json:"adTitle"`
}

// AvailableAdsResponse wraps the watchable ad list.
type AvailableAdsResponse struct {
	Ads []model.Ad `json:"ads"`
}
