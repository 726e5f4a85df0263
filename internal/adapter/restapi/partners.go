package restapi

import (
	"context"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

type availableAdsResponse struct {
	Ads []model.Ad `json:"ads"`
}

func (c *Client) NearbyPartners(ctx context.Context) ([]model.Partner, error) {
	var partners []model.Partner
	if err := c.do(ctx, http.MethodGet, "/api/partners/nearby", nil, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

func (c *Client) PartnerDetails(ctx context.Context, partnerID string) (*model.Partner, error) {
	var partner model.Partner
	if err := c.do(ctx, http.MethodGet, "/api/partners/"+partnerID, nil, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// CheckIn records a visit at a partner venue. The backend resolves the user
// from the bearer token.
func (c *Client) CheckIn(ctx context.Context, partnerID string) (*model.OpResult, error) {
	var result model.OpResult
	if err := c.do(ctx, http.MethodPost, "/api/location/checkin/"+partnerID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyLocation proves physical presence before a location-gated quiz.
func (c *Client) VerifyLocation(ctx context.Context, params provider.VerifyLocationParams) (*model.OpResult, error) {
	body := map[string]any{
		"userId":             params.UserID,
		"latitude":           params.Latitude,
		"longitude":          params.Longitude,
		"partnerId":          params.PartnerID,
		"verificationMethod": params.VerificationMethod,
		"deviceInfo":         params.DeviceInfo,
		"timestamp":          params.Timestamp,
	}
	var result model.OpResult
	if err := c.do(ctx, http.MethodPost, "/api/quiz/location/verify", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WatchAd reports a completed ad view for points.
func (c *Client) WatchAd(ctx context.Context, userID, adID, adTitle string) (*model.OpResult, error) {
	body := map[string]any{
		"userId":  userID,
		"adId":    adID,
		"adTitle": adTitle,
	}
	var result model.OpResult
	if err := c.do(ctx, http.MethodPost, "/api/quiz/ads/watch", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) AdProgress(ctx context.Context, userID string) (*model.AdProgress, error) {
	var progress model.AdProgress
	if err := c.do(ctx, http.MethodGet, "/api/quiz/ads/progress/"+userID, nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *Client) AvailableAds(ctx context.Context) ([]model.Ad, error) {
	var data availableAdsResponse
	if err := c.do(ctx, http.MethodGet, "/api/quiz/ads/available", nil, &data); err != nil {
		return nil, err
	}
	return data.Ads, nil
}
