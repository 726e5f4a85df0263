package model

import "time"

// QRCodeStatus is the lifecycle state of a generated code.
type QRCodeStatus string

const (
	QRCodeActive  QRCodeStatus = "ACTIVE"
	QRCodeUsed    QRCodeStatus = "USED"
	QRCodeExpired QRCodeStatus = "EXPIRED"
)

// QRCode is a generated loyalty code, either carrying points or a check-in.
type QRCode struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	Data         string       `json:"data"`
	PointsAmount int          `json:"pointsAmount,omitempty"`
	Status       QRCodeStatus `json:"status"`
	Description  string       `json:"description,omitempty"`
	ExpiresAt    *time.Time   `json:"expiresAt,omitempty"`
	UsedAt       *time.Time   `json:"usedAt,omitempty"`
	UsedBy       string       `json:"usedBy,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
