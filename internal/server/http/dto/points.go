package dto

// AddPointsRequest credits points to a user's balance.
type AddPointsRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Points    int    `json:"points" binding:"required,gt=0"`
	Reason    string `json:"reason" binding:"required"`
	PartnerID string `json:"partnerId"`
}

// AddPointsResponse reports the post-credit balance.
type AddPointsResponse struct {
	Success    bool   `json:"success"`
	NewBalance int    `json:"newBalance"`
	Message    string `json:"message"`
}
