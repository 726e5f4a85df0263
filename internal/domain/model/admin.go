package model

// AdminOverview aggregates headline numbers for the admin dashboard.
type AdminOverview struct {
	TotalUsers          int `json:"totalUsers"`
	ActiveUsers         int `json:"activeUsers"`
	TotalPointsIssued   int `json:"totalPointsIssued"`
	TotalPointsRedeemed int `json:"totalPointsRedeemed"`
	ActivePoints        int `json:"activePoints"`
	TotalPartners       int `json:"totalPartners"`
	ActivePartners      int `json:"activePartners"`
	TotalQuizzes        int `json:"totalQuizzes"`
	ActiveQuizzes       int `json:"activeQuizzes"`
	TotalPromotions     int `json:"totalPromotions"`
	ActivePromotions    int `json:"activePromotions"`
}
