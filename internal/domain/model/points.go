package model

import "time"

// LoyaltyPoints is a snapshot of a member's point ledger.
// Balance is maintained server side as earned minus redeemed.
type LoyaltyPoints struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	PointsBalance int       `json:"pointsBalance"`
	TotalEarned   int       `json:"totalEarned"`
	TotalRedeemed int       `json:"totalRedeemed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
