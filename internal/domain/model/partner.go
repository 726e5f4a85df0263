package model

// PartnerPromotion is a short promotion teaser attached to a partner listing.
type PartnerPromotion struct {
	Title string `json:"title"`
}

// Partner describes a participating business.
type Partner struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Type              string             `json:"type"`
	Location          string             `json:"location,omitempty"`
	Status            string             `json:"status"`
	Commission        float64            `json:"commission,omitempty"`
	Rating            float64            `json:"rating,omitempty"`
	ContactEmail      string             `json:"contactEmail,omitempty"`
	ContactPhone      string             `json:"contactPhone,omitempty"`
	BusinessHours     string             `json:"businessHours,omitempty"`
	Latitude          float64            `json:"latitude,omitempty"`
	Longitude         float64            `json:"longitude,omitempty"`
	Distance          float64            `json:"distance,omitempty"`
	CurrentPromotions []PartnerPromotion `json:"currentPromotions,omitempty"`
}

// OpResult is the generic success/message envelope several backend
// operations reply with (check-ins, verifications, subscriptions, scans).
type OpResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	PointsEarned int    `json:"pointsEarned,omitempty"`
}

// Ad is a sponsored clip users can watch for points.
type Ad struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AdProgress tracks how many ads a user has watched so far.
type AdProgress struct {
	WatchedAds int     `json:"watchedAds"`
	TotalAds   int     `json:"totalAds"`
	Progress   float64 `json:"progress"`
}
