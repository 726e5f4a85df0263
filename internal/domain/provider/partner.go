package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// VerifyLocationParams proves physical presence at a partner venue.
type VerifyLocationParams struct {
	UserID             string
	Latitude           float64
	Longitude          float64
	PartnerID          string
	VerificationMethod string
	DeviceInfo         string
	Timestamp          int64
}

// Partner covers the partner directory, location check-ins, and ad watching.
type Partner interface {
	Named
	NearbyPartners(ctx context.Context) ([]model.Partner, error)
	PartnerDetails(ctx context.Context, partnerID string) (*model.Partner, error)
	CheckIn(ctx context.Context, partnerID string) (*model.OpResult, error)
	VerifyLocation(ctx context.Context, params VerifyLocationParams) (*model.OpResult, error)
	WatchAd(ctx context.Context, userID, adID, adTitle string) (*model.OpResult, error)
	AdProgress(ctx context.Context, userID string) (*model.AdProgress, error)
	AvailableAds(ctx context.Context) ([]model.Ad, error)
}
