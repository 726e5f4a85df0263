package dto

// SubscribeRequest purchases a subscription plan.
type SubscribeRequest struct {
	PlanID          string `json:"planId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// GenerateQRRequest mints a loyalty QR code.
type GenerateQRRequest struct {
	Type         string `json:"type" binding:"required"`
	PointsAmount int    `json:"pointsAmount"`
	Description  string `json:"description"`
}

// ScanQRRequest redeems a scanned code.
type ScanQRRequest struct {
	QRData string `json:"qrData" binding:"required"`
}
